package host

import (
	"errors"
	"fmt"
	"strings"
)

// Formatter renders a raised error, including its traceback.
type Formatter interface {
	FormatException(st ErrorState) (string, error)
}

// TracebackFormatter renders errors in the familiar
// "Traceback (most recent call last)" layout.
type TracebackFormatter struct{}

// FormatException implements Formatter.
func (TracebackFormatter) FormatException(st ErrorState) (string, error) {
	if st.Type == "" {
		return "", errors.New("error has no type")
	}
	var b strings.Builder
	if len(st.Traceback) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		for _, f := range st.Traceback {
			file := f.File
			if file == "" {
				file = "<host>"
			}
			fmt.Fprintf(&b, "  File \"%s\", line %d, in %s\n", file, f.Line, f.Func)
		}
	}
	b.WriteString(st.Type)
	if st.Value != nil {
		if msg := st.Value.String(); msg != "" {
			b.WriteString(": ")
			b.WriteString(msg)
		}
	}
	b.WriteByte('\n')
	return b.String(), nil
}
