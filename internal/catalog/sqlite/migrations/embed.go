// Package migrations embeds the catalog schema and seed data.
package migrations

import "embed"

// FS contains embedded SQLite migrations for the activity catalog.
//
//go:embed *.sql
var FS embed.FS
