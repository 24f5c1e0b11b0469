package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-d", "cli.db",
		"-config", "/etc/greyvault.json",
		"-log-file", "cli.log",
		"-log-level", "error",
		"-argon2-time", "2",
		"-argon2-memory", "8192",
		"-argon2-threads", "1",
		"-key-len", "24",
		"-salt-len", "16",
		"-nonce-len", "12",
		"-tag-len", "12",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "cli.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/greyvault.json", cfg.JSONFilePath)
	assert.Equal(t, "cli.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, Crypto{
		Time:      2,
		MemoryKiB: 8192,
		Threads:   1,
		KeyLen:    24,
		SaltLen:   16,
		NonceLen:  12,
		TagLen:    12,
	}, cfg.Crypto)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown flag", args: []string{"-a", "localhost:8080"}},
		{name: "not a number", args: []string{"-salt-len", "many"}},
		{name: "threads overflow", args: []string{"-argon2-threads", "300"}, wantErr: ErrInvalidCryptoConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
