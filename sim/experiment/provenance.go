package experiment

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProvenanceFileName is the provenance log created inside the experiment's
// output directory.
const ProvenanceFileName = "provenance.json"

// Tracker records the single-combination reduction of the experiment spec
// that produced each generated scenario. Records are appended in generation
// order; the log becomes one well-formed JSON array of N objects after
// Finalize. The writer is append-only, so total cost is linear in N.
//
// Known limitation: a process terminated between the first Append and
// Finalize leaves an unterminated array on disk.
type Tracker struct {
	f      *os.File
	n      int
	closed bool
}

// NewTracker creates (truncating any prior content) the provenance log at
// path and opens the array.
func NewTracker(path string) (*Tracker, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating provenance log: %w", err)
	}
	if _, err := f.WriteString("["); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing provenance log: %w", err)
	}
	return &Tracker{f: f}, nil
}

// Append writes one provenance record to the log.
func (t *Tracker) Append(record *Spec) error {
	data, err := json.MarshalIndent(record, "  ", "  ")
	if err != nil {
		return fmt.Errorf("encoding provenance record: %w", err)
	}
	sep := "\n  "
	if t.n > 0 {
		sep = ",\n  "
	}
	if _, err := t.f.WriteString(sep); err != nil {
		return fmt.Errorf("writing provenance log: %w", err)
	}
	if _, err := t.f.Write(data); err != nil {
		return fmt.Errorf("writing provenance log: %w", err)
	}
	t.n++
	return nil
}

// Count returns the number of records appended so far.
func (t *Tracker) Count() int { return t.n }

// Finalize terminates the array and closes the log. The file parses as a
// JSON array of Count() objects afterwards. Idempotent with Close.
func (t *Tracker) Finalize() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if _, err := t.f.WriteString("\n]\n"); err != nil {
		t.f.Close()
		return fmt.Errorf("finalizing provenance log: %w", err)
	}
	if err := t.f.Close(); err != nil {
		return fmt.Errorf("finalizing provenance log: %w", err)
	}
	return nil
}

// Close releases the file without terminating the array. Used on the error
// path, where the log is intentionally left as evidence of the aborted run.
func (t *Tracker) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.f.Close()
}
