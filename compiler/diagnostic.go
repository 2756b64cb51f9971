package compiler

import (
	"fmt"
	"strconv"
)

const (
	// UnknownLine marks a diagnostic that has no source position, like a recovered internal fault.
	UnknownLine = 0
	// EndOfFileLine marks an expectation that ran out of tokens.
	EndOfFileLine = -1
)

// Diagnostic is one error or one warning. Whether it is an error or a warning depends on the list holding it.
type Diagnostic struct {
	Line    int
	Message string
}

func newDiagnostic(line int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}

func (diagnostic *Diagnostic) LineString() string {
	switch diagnostic.Line {
	case UnknownLine:
		return "N/A"
	case EndOfFileLine:
		return "EOF"
	}
	return strconv.Itoa(diagnostic.Line)
}

func (diagnostic *Diagnostic) String() string {
	return fmt.Sprintf("Line %s: %s", diagnostic.LineString(), diagnostic.Message)
}
