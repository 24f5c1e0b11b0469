package config

import (
	"fmt"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/rs/zerolog"
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLog contains the resolved log settings.
type ClientLog struct {
	File  string
	Level zerolog.Level
}

// ClientConfig is the immutable runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Crypto is handed to the codec as-is.
	Crypto Crypto
	// Storage contains client storage settings.
	Storage ClientStorage
	// Log contains the log destination and level.
	Log ClientLog
}

// Params converts the crypto section into the parameter set used by the
// key derivation and the codec.
func (c Crypto) Params() crypto.Params {
	return crypto.Params{
		Time:      c.Time,
		MemoryKiB: c.MemoryKiB,
		Threads:   c.Threads,
		KeyLen:    c.KeyLen,
		SaltLen:   c.SaltLen,
		NonceLen:  c.NonceLen,
		TagLen:    c.TagLen,
	}
}

// GetClientConfig builds a validated client config from defaults, the JSON
// file, the environment and args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.toClientConfig(), nil
}

// toClientConfig expects a validated config.
func (cfg *StructuredConfig) toClientConfig() *ClientConfig {
	level, _ := zerolog.ParseLevel(cfg.Log.Level)

	return &ClientConfig{
		Crypto: cfg.Crypto,
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: level,
		},
	}
}
