package main

import (
	"bytes"
	"errors"
	"testing"

	"tric/internal/stack"

	"github.com/stretchr/testify/assert"
)

func TestReportError(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, reportError(&out, nil))
	assert.Empty(t, out.String())

	assert.Equal(t, 1, reportError(&out, errors.New(`service "db" is not running`)))
	assert.Equal(t, "error: service \"db\" is not running\n", out.String())

	out.Reset()
	assert.Equal(t, 130, reportError(&out, &stack.ExitError{Code: 130}))
	assert.Empty(t, out.String())
}
