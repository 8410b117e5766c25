// Package migrations holds the numbered schema migrations for the search
// history database. Files are named NNN_name.up.sql / NNN_name.down.sql.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
