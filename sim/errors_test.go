package sim

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &DecodeError{Path: "spec.yaml", Err: cause}
	assert.Contains(t, err.Error(), "spec.yaml")
	assert.True(t, errors.Is(err, cause))
}

func TestResolutionError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("bad count")
	err := &ResolutionError{Ref: "small", Err: cause}
	assert.Contains(t, err.Error(), "small")
	assert.True(t, errors.Is(err, cause))
}
