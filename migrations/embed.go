// Package migrations embeds the goose SQL migrations for the archive sink.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
