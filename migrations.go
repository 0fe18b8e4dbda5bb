// Package enricher holds resources shared by the binaries of the domain
// enrichment service.
package enricher

import "embed"

// Migrations contains goose migrations for every supported database backend,
// grouped by dialect under migrations/<dialect>.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS
