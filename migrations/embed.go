// Package migrations bundles the goose migrations for each SQL backend.
package migrations

import "embed"

// FS holds one directory of migrations per dialect: postgres/ and sqlite/.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
