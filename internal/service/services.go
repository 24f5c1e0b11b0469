package service

import (
	"fmt"

	"github.com/MKhiriev/greyvault/internal/config"
	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/internal/store"
	"github.com/MKhiriev/greyvault/internal/validators"
	"github.com/MKhiriev/greyvault/models"
)

type ClientServices struct {
	VaultService   VaultService
	AppInfoService AppInfoService
}

// NewClientServices builds the codec from the crypto config and wires the
// services over the opened storages.
func NewClientServices(storages *store.ClientStorages, cfg config.Crypto, buildInfo models.AppBuildInfo, log *logger.Logger) (*ClientServices, error) {
	codec, err := crypto.NewCodec(cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("create codec: %w", err)
	}

	appInfo, err := NewAppInfoService(buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &ClientServices{
		VaultService:   NewVaultService(storages.VaultRepository, codec, validators.NewVaultEntryValidator(), log),
		AppInfoService: appInfo,
	}, nil
}
