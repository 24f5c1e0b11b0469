// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal shell of greyvault on top
// of bubbletea.
//
// The shell is a single program routed by [RootModel] between three pages:
// unlock (ask the master secret and list entries), list (browse, reveal,
// delete) and create (add an entry). Every page talks to the vault only
// through [service.VaultService]; master secrets typed into masked inputs are
// moved into a [crypto.Secret] and the input is cleared in the same step.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("services are not provided")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil || services.VaultService == nil || services.AppInfoService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("func", "TUI.Run").Msg("shell started")

	_, err := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("shell stopped with error")
		return fmt.Errorf("run shell: %w", err)
	}

	t.logger.Info().Str("func", "TUI.Run").Msg("shell stopped")
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	vault := t.services.VaultService

	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, vault),
		pageList:   NewListModel(ctx, vault, clipboard.WriteAll),
		pageCreate: NewCreateModel(ctx, vault),
	}

	return NewRootModel(pages, pageUnlock, t.services.AppInfoService.GetBuildInfo(ctx))
}
