package listing

import (
	"github.com/ezrec/sicxe/translate"
)

// ErrFormat names an unsupported export format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return translate.From("export format '%v' unknown", string(err))
}
