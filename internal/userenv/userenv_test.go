package userenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	out := []byte("PATH=/usr/local/bin:/usr/bin\n" +
		"HOME=/home/user200\n" +
		"LS_COLORS=rs=0:di=01\n" +
		"EMPTY=\n" +
		"malformed line\n" +
		"\n" +
		"=novalue\n")

	env := ParseEnv(out)
	assert.Equal(t, "/usr/local/bin:/usr/bin", env["PATH"])
	assert.Equal(t, "/home/user200", env["HOME"])
	assert.Equal(t, "rs=0:di=01", env["LS_COLORS"], "'=' inside a value is preserved")
	assert.Equal(t, "", env["EMPTY"])
	assert.NotContains(t, env, "malformed line")
	assert.NotContains(t, env, "")
	assert.Len(t, env, 4)
}

func TestParseEnvEmpty(t *testing.T) {
	assert.Empty(t, ParseEnv(nil))
	assert.Empty(t, ParseEnv([]byte("\n\n")))
}
