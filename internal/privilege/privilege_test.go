package privilege

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAcceptsRoot(t *testing.T) {
	g := Guard{EUID: func() int { return 0 }}
	assert.NoError(t, g.Require())
}

func TestRequireRejectsNonRoot(t *testing.T) {
	g := Guard{EUID: func() int { return 1000 }}
	err := g.Require()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientPrivileges))
	assert.Contains(t, err.Error(), "1000")
}
