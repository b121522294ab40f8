package scanner

import "fmt"

// ScanError describes a documented, non-fatal failure a sub-scanner
// encountered — something worth surfacing in a debug log or test failure
// even though none of the five external entry points (spec.md §6) return
// anything richer than a bool or byte count. It is never returned from
// Scan/Serialize/Deserialize directly; callers that want diagnostics use
// LastError after a call returns false/zero.
//
// Shape grounded on the teacher's error.go: a named sender plus a message,
// rendered with fmt.Sprintf rather than a structured multi-field report.
type ScanError struct {
	Sender string
	Msg    string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("htmldjango/scanner: %s: %s", e.Sender, e.Msg)
}

func newScanError(sender, format string, args ...any) *ScanError {
	return &ScanError{Sender: sender, Msg: fmt.Sprintf(format, args...)}
}
