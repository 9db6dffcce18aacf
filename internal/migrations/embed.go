// Package migrations provides embedded SQL migration files.
package migrations

import (
	_ "embed"
)

// InitialSQL creates the feedback, preference and cache tables. Every
// statement is idempotent, so it runs on each startup.
//
//go:embed sql/001_initial.sql
var InitialSQL string
