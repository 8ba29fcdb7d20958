package inspect

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Dumper writes request records to a single output stream. Each
// record is rendered into one block and written in a single call
// under a mutex, so blocks from concurrent requests never interleave.
type Dumper struct {
	mu sync.Mutex
	w  io.Writer
}

func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

// NewStdoutDumper returns a Dumper writing to standard output, the
// process' console.
func NewStdoutDumper() *Dumper {
	return NewDumper(os.Stdout)
}

// Dump renders and writes one request block.
func (d *Dumper) Dump(rec Record) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "\n===== %s REQUEST ======\n", rec.Method)
	fmt.Fprintf(&buf, "Path: %s\n", rec.Path)
	fmt.Fprintln(&buf, "Headers:")
	for _, h := range rec.Headers {
		fmt.Fprintf(&buf, "  %s: %s\n", h.Name, h.Value)
	}

	if rec.HasBody {
		fmt.Fprintf(&buf, "Body:\n%s\n", rec.Body)
	}

	if rec.Schema != nil {
		writeSchemaReport(&buf, rec.Schema)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.w.Write(buf.Bytes())
	return err
}

func writeSchemaReport(buf *bytes.Buffer, report *SchemaReport) {
	switch {
	case report.Err != nil:
		fmt.Fprintf(buf, "Schema: not applicable (%s)\n", report.Err)
	case report.Valid:
		fmt.Fprintln(buf, "Schema: valid")
	default:
		fmt.Fprintln(buf, "Schema: invalid")
		for _, problem := range report.Problems {
			fmt.Fprintf(buf, "  - %s\n", problem)
		}
	}
}
