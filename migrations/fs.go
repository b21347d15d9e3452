// Package migrations embeds the versioned schema files for both storage
// backends. Filenames follow NNN_name.sql; the migration runner applies them
// in order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
