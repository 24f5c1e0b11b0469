package config

import (
	"testing"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "empty log file",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.File = "" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "bad key length",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.KeyLen = 20 },
			wantErr: crypto.ErrInvalidConfiguration,
		},
		{
			name:    "short nonce",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.NonceLen = 8 },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "zero argon2 time",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.Time = 0 },
			wantErr: ErrInvalidCryptoConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToClientConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "debug"

	client := cfg.toClientConfig()

	assert.Equal(t, crypto.DefaultParams(), client.Crypto.Params())
	assert.Equal(t, defaultDSN, client.Storage.DB.DSN)
	assert.Equal(t, defaultLogFile, client.Log.File)
	assert.Equal(t, "debug", client.Log.Level.String())
}
