package diag

// Severity ranks a diagnostic.
type Severity uint8

const (
	// SevInfo is informational output (paired with the IOInfo code).
	SevInfo Severity = iota
	// SevWarning marks recoverable lexical issues (an unterminated
	// string, say): the line still produces tokens.
	SevWarning
	// SevError marks failures that void a line's result.
	SevError
)

// String returns the uppercase label used in diagnostic headings.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
