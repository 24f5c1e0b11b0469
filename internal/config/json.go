package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	Crypto struct {
		Argon2Time      uint32 `json:"argon2_time"`
		Argon2MemoryKiB uint32 `json:"argon2_memory_kib"`
		Argon2Threads   uint8  `json:"argon2_threads"`
		KeyLen          uint32 `json:"key_len"`
		SaltLen         int    `json:"salt_len"`
		NonceLen        int    `json:"nonce_len"`
		TagLen          int    `json:"tag_len"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{
			Time:      jsonCfg.Crypto.Argon2Time,
			MemoryKiB: jsonCfg.Crypto.Argon2MemoryKiB,
			Threads:   jsonCfg.Crypto.Argon2Threads,
			KeyLen:    jsonCfg.Crypto.KeyLen,
			SaltLen:   jsonCfg.Crypto.SaltLen,
			NonceLen:  jsonCfg.Crypto.NonceLen,
			TagLen:    jsonCfg.Crypto.TagLen,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
