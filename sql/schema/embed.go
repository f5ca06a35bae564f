// Package schema embeds the goose migrations so the server binary can apply them
// without access to the source tree.
package schema

import "embed"

//go:embed *.sql
var FS embed.FS
