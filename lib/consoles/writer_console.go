package consoles

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type writerConsole struct {
	w        io.Writer
	prefixes []string
}

// NewWriterConsole writes diagnostics to w. The CLI passes stderr so that
// stdout stays reserved for the computed version line.
func NewWriterConsole(w io.Writer) Console {
	return &writerConsole{w: w}
}

func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.w, builder.String())
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
