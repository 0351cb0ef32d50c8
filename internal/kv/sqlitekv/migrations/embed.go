// Package migrations embeds the goose migration scripts for the sqlite
// key/value medium.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
