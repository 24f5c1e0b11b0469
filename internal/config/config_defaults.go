package config

import "github.com/MKhiriev/greyvault/internal/crypto"

const (
	defaultDSN      = "vault.db"
	defaultLogFile  = "greyvault.log"
	defaultLogLevel = "info"
)

func defaultConfig() *StructuredConfig {
	p := crypto.DefaultParams()

	return &StructuredConfig{
		Crypto: Crypto{
			Time:      p.Time,
			MemoryKiB: p.MemoryKiB,
			Threads:   p.Threads,
			KeyLen:    p.KeyLen,
			SaltLen:   p.SaltLen,
			NonceLen:  p.NonceLen,
			TagLen:    p.TagLen,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Log:     Log{File: defaultLogFile, Level: defaultLogLevel},
	}
}
