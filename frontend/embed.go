package frontend

import "embed"

// StaticFiles holds the built front end served by the HTTP controller
//
//go:embed dist
var StaticFiles embed.FS
