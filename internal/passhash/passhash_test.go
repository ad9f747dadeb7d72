package passhash

import (
	"strings"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA512(t *testing.T) {
	hash, err := SHA512("cluster-batch-2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$6$"))

	assert.NoError(t, sha512_crypt.New().Verify(hash, []byte("cluster-batch-2024")))
	assert.Error(t, sha512_crypt.New().Verify(hash, []byte("wrong")))
}

func TestSHA512SaltsPerCall(t *testing.T) {
	a, err := SHA512("same")
	require.NoError(t, err)
	b, err := SHA512("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
