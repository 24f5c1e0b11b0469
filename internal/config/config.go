// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for greyvault.
// It aggregates all sub-configurations and is populated by merging built-in
// defaults, an optional JSON file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the key derivation and envelope layout parameters.
	// Every envelope in a vault is bound to the values used to write it.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the location of the local vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the destination and verbosity of the application log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto mirrors [crypto.Params] in a form the config sources can fill.
type Crypto struct {
	// Env: CRYPTO_ARGON2_TIME
	Time uint32 `env:"ARGON2_TIME"`
	// Env: CRYPTO_ARGON2_MEMORY_KIB
	MemoryKiB uint32 `env:"ARGON2_MEMORY_KIB"`
	// Env: CRYPTO_ARGON2_THREADS
	Threads uint8 `env:"ARGON2_THREADS"`
	// Env: CRYPTO_KEY_LEN
	KeyLen uint32 `env:"KEY_LEN"`
	// Env: CRYPTO_SALT_LEN
	SaltLen int `env:"SALT_LEN"`
	// Env: CRYPTO_NONCE_LEN
	NonceLen int `env:"NONCE_LEN"`
	// Env: CRYPTO_TAG_LEN
	TagLen int `env:"TAG_LEN"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite vault file.
type DB struct {
	// DSN is the path of the SQLite file (e.g. "vault.db"). The file is
	// created on first start.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds the application log settings. The interactive shell owns the
// terminal, so logs always go to a file.
type Log struct {
	// File is the path of the JSON log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in the following priority order
// (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
