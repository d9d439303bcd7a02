package sicxe

import (
	"github.com/hashicorp/go-multierror"
)

// Severity of a diagnostic.
type Severity int

const (
	SEVERITY_WARNING = Severity(0) // warning
	SEVERITY_ERROR   = Severity(1) // error
)

func (sev Severity) String() string {
	switch sev {
	case SEVERITY_WARNING:
		return "warning"
	case SEVERITY_ERROR:
		return "error"
	}
	return "unknown"
}

// Diagnostic is a non-fatal problem attached to a source line.
type Diagnostic struct {
	Index    int
	LineNo   string
	Severity Severity
	Err      error
}

func (diag Diagnostic) Error() string {
	return f("line %v: %v: %v", diag.LineNo, diag.Severity, diag.Err)
}

func (diag Diagnostic) Unwrap() error {
	return diag.Err
}

func warning(line *SourceLine, err error) Diagnostic {
	return Diagnostic{Index: line.Index, LineNo: line.LineNo, Severity: SEVERITY_WARNING, Err: err}
}

func failure(line *SourceLine, err error) Diagnostic {
	return Diagnostic{Index: line.Index, LineNo: line.LineNo, Severity: SEVERITY_ERROR, Err: err}
}

// Errors folds the error level diagnostics into a single error, or nil.
func Errors(diags []Diagnostic) error {
	var merr *multierror.Error
	for _, diag := range diags {
		if diag.Severity == SEVERITY_ERROR {
			merr = multierror.Append(merr, diag)
		}
	}
	return merr.ErrorOrNil()
}
