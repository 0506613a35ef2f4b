// Package migrations embeds the schema migration files for the sqlite driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
