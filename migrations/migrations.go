// Package migrations embeds the SQL migrations applied to the postgres store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
