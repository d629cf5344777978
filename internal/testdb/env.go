package testdb

import (
	"os"
	"testing"

	"github.com/phrazzld/athlete-api/internal/config"
)

// PostgresURLEnv names the variable holding a PostgreSQL URL for integration tests.
const PostgresURLEnv = "ATHLETE_TEST_DATABASE_URL"

// IsIntegrationTestEnvironment reports whether a PostgreSQL database is
// configured for integration tests.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv(PostgresURLEnv) != ""
}

// PostgresConfig returns a configuration for the PostgreSQL database named by
// ATHLETE_TEST_DATABASE_URL, skipping the test when it is not set.
// The schema is reset by OpenWithConfig, so the database must be disposable.
func PostgresConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	if !IsIntegrationTestEnvironment() {
		t.Skipf("Skipping PostgreSQL test. Set %s to run", PostgresURLEnv)
	}
	return config.DatabaseConfig{
		URL:          os.Getenv(PostgresURLEnv),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	}
}
