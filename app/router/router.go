package router

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shoecard/app/controller"
)

type Controllers struct {
	Card *controller.CardController
}

// Clock returns the current time; replaced in tests
type Clock func() time.Time

type cardFlags struct {
	catalog string
	now     string
	out     string
}

// request resolves the shared flags. --now pins the clock so a batch of
// cards is classified against one instant.
func (f *cardFlags) request(clock Clock) (controller.CardRequest, error) {
	now := clock()
	if f.now != "" {
		parsed, err := time.Parse(time.RFC3339, f.now)
		if err != nil {
			return controller.CardRequest{}, fmt.Errorf("invalid --now %q: %w", f.now, err)
		}
		now = parsed
	}
	return controller.CardRequest{CatalogPath: f.catalog, Now: now}, nil
}

func (f *cardFlags) bind(cmd *cobra.Command, withOut bool, defaultOut string) {
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "path to the shoe catalog (YAML or JSON)")
	cmd.Flags().StringVar(&f.now, "now", "", "classification time in RFC3339 (defaults to the current time)")
	_ = cmd.MarkFlagRequired("catalog")
	if withOut {
		cmd.Flags().StringVar(&f.out, "out", defaultOut, "output file")
	}
}

// NewRootCommand builds the shoecard command tree
func NewRootCommand(controllers *Controllers, clock Clock) *cobra.Command {
	if clock == nil {
		clock = time.Now
	}

	root := &cobra.Command{
		Use:           "shoecard",
		Short:         "Build and render shoe listing cards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// View models as JSON
	var viewFlags cardFlags
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Print the card view models as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := viewFlags.request(clock)
			if err != nil {
				return err
			}
			return controllers.Card.View(cmd.Context(), req, cmd.OutOrStdout())
		},
	}
	viewFlags.bind(viewCmd, false, "")

	// HTML catalog page
	var renderFlags cardFlags
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the cards into an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := renderFlags.request(clock)
			if err != nil {
				return err
			}
			return controllers.Card.Render(cmd.Context(), req, renderFlags.out)
		},
	}
	renderFlags.bind(renderCmd, true, "cards.html")

	// JPEG snapshot through headless Chrome
	var snapshotFlags cardFlags
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the cards and capture them as a JPEG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := snapshotFlags.request(clock)
			if err != nil {
				return err
			}
			return controllers.Card.Snapshot(cmd.Context(), req, snapshotFlags.out)
		},
	}
	snapshotFlags.bind(snapshotCmd, true, "cards.jpg")

	root.AddCommand(viewCmd, renderCmd, snapshotCmd)
	return root
}
