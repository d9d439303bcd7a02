// Package templates holds sample SIC/XE programs, written with source
// line numbers as the assembler expects.
package templates

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/ezrec/sicxe/translate"
)

//go:embed asm/*.asm
var files embed.FS

const suffix = ".asm"

// ErrTemplate names a template that does not exist.
type ErrTemplate string

func (err ErrTemplate) Error() string {
	return translate.From("template '%v' unknown", string(err))
}

// Names returns the template names in alphabetical order.
func Names() (names []string) {
	entries, err := fs.ReadDir(files, "asm")
	if err != nil {
		return
	}
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), suffix))
	}
	slices.Sort(names)
	return
}

// Source returns the source text of a template.
func Source(name string) (source string, err error) {
	data, err := files.ReadFile(path.Join("asm", name+suffix))
	if err != nil {
		err = ErrTemplate(name)
		return
	}
	source = string(data)
	return
}
