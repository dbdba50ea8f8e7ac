// Package ledger exposes embedded assets that need to live at the module
// root, currently only the goose migration files.
package ledger

import "embed"

// Migrations contains the SQL migration files applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
