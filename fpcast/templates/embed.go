package templates

import "embed"

// FS exposes the codegen template used by fpcast
// for the e4m3 decode lookup table.
//
//go:embed *.go.tpl
var FS embed.FS
