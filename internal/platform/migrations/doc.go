// Package migrations embeds the SQL schema migrations for every supported
// database backend and runs them with goose.
package migrations
