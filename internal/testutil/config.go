package testutil

import (
	"testing"
	"time"

	"budgetwise/internal/config"
)

// TestSupabaseKey signs the tokens used in tests.
const TestSupabaseKey = "test-supabase-key-0123456789abcdef"

// SetTestConfig installs a configuration that does not depend on the
// environment and restores the previous one when the test ends.
func SetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Port:             "3000",
		Env:              "test",
		SupabaseURL:      "https://project.supabase.test",
		SupabaseKey:      TestSupabaseKey,
		JWTExpirationDur: time.Hour,
		OperationTimeout: 2 * time.Second,
	}
	config.Set(cfg)
	t.Cleanup(func() { config.Set(nil) })
	return cfg
}
