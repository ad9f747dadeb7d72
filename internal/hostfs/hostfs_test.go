package hostfs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMapping(t *testing.T) {
	SetRoot("/host")
	defer SetRoot("/")

	p, err := Path("etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "/host/etc/passwd", p)

	p, err = Path("/etc/shadow")
	require.NoError(t, err)
	assert.Equal(t, "/host/etc/shadow", p)

	a, err := Abs("/home/user200")
	require.NoError(t, err)
	assert.Equal(t, "/host/home/user200", a)
}

func TestPathDefaultRootIsIdentity(t *testing.T) {
	p, err := Path("etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd", p)

	a, err := Abs("/home/user200")
	require.NoError(t, err)
	assert.Equal(t, "/home/user200", a)
}

func TestPathRejectsEscapes(t *testing.T) {
	_, err := Path("")
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, err = Path("../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, err = Abs("relative/path")
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, err = Abs("")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwd")
	require.NoError(t, WriteFileAtomic(path, []byte("root:x:0:0::/root:/bin/sh\n"), 0644))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root:x:0:0::/root:/bin/sh\n", string(b))

	require.NoError(t, WriteFileAtomic(path, []byte("replaced\n"), 0600))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", string(b))

	if runtime.GOOS != "windows" {
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), st.Mode().Perm())
	}
}

func TestLockAccountDB(t *testing.T) {
	dir := t.TempDir()

	unlock, err := LockAccountDB(dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ".pwd.lock"))
	assert.NoError(t, err)
	unlock()

	// Re-acquire after release.
	unlock, err = LockAccountDB(dir)
	require.NoError(t, err)
	unlock()
}
