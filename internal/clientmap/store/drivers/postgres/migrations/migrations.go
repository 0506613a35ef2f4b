// Package migrations embeds the schema migration files for the postgres driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
