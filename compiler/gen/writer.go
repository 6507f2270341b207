package gen

import (
	"golang.org/x/tools/imports"
)

// formatOptions formats without resolving imports, so output does not
// depend on the packages available on the host.
var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// writer formats and persists rendered migrations.
type writer struct {
	files  FileStore
	format bool
}

// write stores content at path, formatting it first when enabled.
func (w *writer) write(kind Kind, path, content string) error {
	data := []byte(content)
	if w.format {
		formatted, err := imports.Process(path, data, formatOptions)
		if err != nil {
			// Best effort: keep the unformatted source next to the target for debugging.
			debugPath := path + ".error"
			_ = w.files.WriteFile(debugPath, data)
			return NewGenerationError(kind.String(), path, "format generated source (unformatted written to "+debugPath+")", err)
		}
		data = formatted
	}
	if err := w.files.WriteFile(path, data); err != nil {
		return NewWriteError(path, err)
	}
	return nil
}
