package validate

import "strings"

// Kind is the severity of a finding.
type Kind string

const (
	Error   Kind = "error"
	Warning Kind = "warning"
)

// Finding is one failed validation.
type Finding struct {
	Msg  string `json:"msg" yaml:"msg"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Findings is the ordered result of a run: errors first, then warnings,
// each group in declaration order.
type Findings []Finding

// HasErrors reports whether any finding is an error.
func (f Findings) HasErrors() bool {
	for _, finding := range f {
		if finding.Kind == Error {
			return true
		}
	}
	return false
}

// Errors returns the error findings.
func (f Findings) Errors() Findings {
	return f.filter(Error)
}

// Warnings returns the warning findings.
func (f Findings) Warnings() Findings {
	return f.filter(Warning)
}

func (f Findings) filter(kind Kind) Findings {
	var out Findings
	for _, finding := range f {
		if finding.Kind == kind {
			out = append(out, finding)
		}
	}
	return out
}

// Messages returns the messages in order.
func (f Findings) Messages() []string {
	msgs := make([]string, len(f))
	for i, finding := range f {
		msgs[i] = finding.Msg
	}
	return msgs
}

// Err returns a *FindingsError holding the error findings, or nil when there
// are none. Warnings never produce an error.
func (f Findings) Err() error {
	errs := f.Errors()
	if len(errs) == 0 {
		return nil
	}
	return &FindingsError{Findings: errs}
}

// FindingsError carries error findings through an error return.
type FindingsError struct {
	Findings Findings
}

func (e *FindingsError) Error() string {
	if len(e.Findings) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Findings.Messages(), "; ")
}

func (e *FindingsError) Unwrap() error {
	return ErrValidationFailed
}
