package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration so main stays lean. Everything
// comes from the environment, loaded once at start.
type Server struct {
	Addr string

	// StoreBackend selects event persistence: "file" (default), "memory",
	// or "postgres".
	StoreBackend string
	StorePath    string
	PostgresDSN  string

	// LedgerBackend selects anchoring: "local" (default) or "hedera".
	LedgerBackend  string
	LocalLedgerDir string

	HederaNetwork     string
	HederaOperatorID  string
	HederaOperatorKey string

	// RedisAddr, when set, backs the anchor dedup cache; empty means the
	// in-process cache.
	RedisAddr string

	AnchorTimeout time.Duration
	AnchorRetries int
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:         envOr("AIDPROOF_ADDR", ":3000"),
		StoreBackend: envOr("AIDPROOF_STORE", "file"),
		StorePath:    envOr("AIDPROOF_STORE_PATH", "data/aidlog.jsonl"),
		PostgresDSN:  os.Getenv("AIDPROOF_POSTGRES_DSN"),

		LedgerBackend:  envOr("AIDPROOF_LEDGER", "local"),
		LocalLedgerDir: envOr("AIDPROOF_LEDGER_DIR", "data/ledger"),

		HederaNetwork:     envOr("HEDERA_NETWORK", "testnet"),
		HederaOperatorID:  os.Getenv("HEDERA_OPERATOR_ID"),
		HederaOperatorKey: os.Getenv("HEDERA_OPERATOR_KEY"),

		RedisAddr: os.Getenv("AIDPROOF_REDIS_ADDR"),

		AnchorTimeout: envDuration("AIDPROOF_ANCHOR_TIMEOUT", 10*time.Second),
		AnchorRetries: envInt("AIDPROOF_ANCHOR_RETRIES", 2),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
