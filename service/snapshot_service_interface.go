package service

import "context"

// SnapshotServiceInterface defines the contract for rasterizing card markup
type SnapshotServiceInterface interface {
	CapturePNG(ctx context.Context, html string) ([]byte, error)
	CaptureJPEG(ctx context.Context, html string) ([]byte, error)
}

// Ensure SnapshotService implements SnapshotServiceInterface
var _ SnapshotServiceInterface = (*SnapshotService)(nil)
