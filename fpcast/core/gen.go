package core

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/teleprint-me/precision-go/fpcast/templates"
	"github.com/teleprint-me/precision-go/precision"
)

var tableTemplate = template.Must(template.ParseFS(templates.FS, "table.go.tpl"))

type tableEntry struct {
	Index   string
	Bits    string
	Comment string
}

// Generate writes a Go source file containing the e4m3 decode lookup
// table. The table is derived from DecodeFloat8, so regenerating after
// a codec change keeps the two in lockstep.
func Generate(outputPath, pkg string) error {
	entries := make([]tableEntry, 0, 256)
	for i := 0; i < 256; i++ {
		b := uint8(i)
		v := precision.DecodeFloat8(b)
		entries = append(entries, tableEntry{
			Index:   fmt.Sprintf("0x%02x", b),
			Bits:    fmt.Sprintf("0x%08x", precision.EncodeFloat32(v)),
			Comment: precision.Describe(precision.F8, uint32(b)),
		})
	}

	data := struct {
		Package string
		Entries []tableEntry
	}{
		Package: pkg,
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := tableTemplate.ExecuteTemplate(&buf, "table.go.tpl", data); err != nil {
		return err
	}

	src, err := imports.Process(outputPath, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			src = buf.Bytes()
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(outputPath, src, 0o644)
}
