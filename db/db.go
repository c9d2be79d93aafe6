// Package db ships the SQL schema with the binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
