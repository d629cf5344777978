// Package testdb provides utilities for tests that need a real database.
//
// Every call to Open creates a fresh SQLite database file under the test's
// temporary directory, opens it through gormstore.Open (so foreign keys and
// pool settings match production) and applies the embedded migrations.
// Tests therefore never share state and can run in parallel.
//
// PostgresConfig points OpenWithConfig at the server named by
// ATHLETE_TEST_DATABASE_URL instead; those tests are skipped when it is unset.
//
// Typical use:
//
//	db := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *gorm.DB) {
//		// use tx, it is rolled back afterwards
//	})
package testdb
