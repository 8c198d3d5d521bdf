// Package idverify embeds the database migrations applied by the migrate
// command.
package idverify

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
