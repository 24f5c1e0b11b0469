package config

import (
	"flag"
	"fmt"
	"math"
)

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// Unset flags keep their zero value so they never override other sources.
//
// Flags:
//
//	-d vault database path
//	-c/-config json file path with configs
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-argon2-time argon2id iterations
//	-argon2-memory argon2id memory in KiB
//	-argon2-threads argon2id parallelism
//	-key-len derived key length in bytes (16, 24 or 32)
//	-salt-len salt length in bytes
//	-nonce-len nonce length in bytes
//	-tag-len authentication tag length in bytes
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("greyvault", flag.ContinueOnError)

	var (
		databaseDSN    string
		jsonConfigPath string
		logFile        string
		logLevel       string
		argonTime      uint
		argonMemory    uint
		argonThreads   uint
		keyLen         uint
		saltLen        int
		nonceLen       int
		tagLen         int
	)

	fs.StringVar(&databaseDSN, "d", "", "Vault database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.UintVar(&argonTime, "argon2-time", 0, "Argon2id iterations")
	fs.UintVar(&argonMemory, "argon2-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&argonThreads, "argon2-threads", 0, "Argon2id parallelism")
	fs.UintVar(&keyLen, "key-len", 0, "Derived key length in bytes (16, 24 or 32)")
	fs.IntVar(&saltLen, "salt-len", 0, "Salt length in bytes")
	fs.IntVar(&nonceLen, "nonce-len", 0, "Nonce length in bytes")
	fs.IntVar(&tagLen, "tag-len", 0, "Authentication tag length in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if argonThreads > math.MaxUint8 {
		return nil, fmt.Errorf("%w: argon2-threads %d exceeds %d", ErrInvalidCryptoConfigs, argonThreads, math.MaxUint8)
	}
	if argonTime > math.MaxUint32 || argonMemory > math.MaxUint32 || keyLen > math.MaxUint32 {
		return nil, fmt.Errorf("%w: argon2 parameter out of range", ErrInvalidCryptoConfigs)
	}

	return &StructuredConfig{
		Crypto: Crypto{
			Time:      uint32(argonTime),
			MemoryKiB: uint32(argonMemory),
			Threads:   uint8(argonThreads),
			KeyLen:    uint32(keyLen),
			SaltLen:   saltLen,
			NonceLen:  nonceLen,
			TagLen:    tagLen,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
