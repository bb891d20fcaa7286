package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shoecard/app/controller"
	"shoecard/app/router"
	"shoecard/config"
	"shoecard/logger"
	"shoecard/promo"
	"shoecard/repository"
	"shoecard/service"
	"shoecard/utils"
)

// Initialize wires services and controllers and returns the root command
func Initialize(cfg *config.Config, baseLogger *zap.Logger) (*cobra.Command, error) {
	cardService := service.NewCardService(
		promo.Classifier{WindowDays: cfg.Promo.NewReleaseWindowDays},
		utils.PriceFormat{
			CurrencySymbol: cfg.Format.CurrencySymbol,
			Locale:         cfg.Format.Locale,
		},
		cfg.Render.Workers,
	)

	renderer, err := service.NewCardRenderer(cfg.Render.Workers, logger.Named(baseLogger, "svc.render"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	snapshots := service.NewSnapshotService(service.SnapshotOptions{
		ChromePath: cfg.Snapshot.ChromePath,
		Timeout:    cfg.Snapshot.Timeout,
		MaxDim:     cfg.Snapshot.MaxDim,
		Quality:    cfg.Snapshot.Quality,
	}, logger.Named(baseLogger, "svc.snapshot"))

	repoLogger := logger.Named(baseLogger, "repo.catalog")
	newRepository := func(path string) repository.CatalogRepositoryInterface {
		return repository.NewFileCatalogRepository(path, repoLogger)
	}

	controllers := &router.Controllers{
		Card: controller.NewCardController(newRepository, cardService, renderer, snapshots, logger.Named(baseLogger, "controller.card")),
	}

	return router.NewRootCommand(controllers, nil), nil
}
