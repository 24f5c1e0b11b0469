package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/greyvault/internal/logger"
)

var ErrNoShell = errors.New("shell is not provided")

type App struct {
	shell    Shell
	storages io.Closer
	logger   *logger.Logger
}

// NewApp takes ownership of storages: they are closed when Run returns.
func NewApp(shell Shell, storages io.Closer, log *logger.Logger) (*App, error) {
	if shell == nil {
		return nil, ErrNoShell
	}

	return &App{
		shell:    shell,
		storages: storages,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Str("func", "App.Run").Msg("client started")

	if err := a.shell.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("shell failed")
		return fmt.Errorf("client run: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

func (a *App) close() {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing storages")
	}
}
