package sim

import "fmt"

// DecodeError reports a spec file that is missing, unreadable, or
// structurally malformed. Cross-field semantics are not checked at decode
// time; a DecodeError always points at the shape of the input.
type DecodeError struct {
	Path string // spec file that failed to decode
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ResolutionError reports a declarative reference that could not be turned
// into a concrete instance: a non-positive repetition count, a topology file
// that fails to decode, or an invalid failure-model descriptor.
type ResolutionError struct {
	Ref string // the reference being resolved, e.g. a topology name
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Ref, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
