package etcfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passwdSeed = "root:x:0:0:root:/root:/bin/bash\n" +
	"# system accounts below\n" +
	"bin:x:1:1:bin:/bin:/usr/sbin/nologin\n" +
	"\n" +
	"daemon:x:2:2:daemon:/sbin:/usr/sbin/nologin\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPasswdRoundTrip(t *testing.T) {
	path := writeTemp(t, "passwd", passwdSeed)
	pw, err := LoadPasswd(path)
	require.NoError(t, err)

	assert.Equal(t, passwdSeed, string(pw.Bytes()), "comments and blank lines survive the round trip")
}

func TestLoadPasswdNormalizesMissingTrailingNewline(t *testing.T) {
	path := writeTemp(t, "passwd", "root:x:0:0:root:/root:/bin/bash")
	pw, err := LoadPasswd(path)
	require.NoError(t, err)

	require.NotNil(t, pw.Find("root"))
	assert.Equal(t, "root:x:0:0:root:/root:/bin/bash\n", string(pw.Bytes()))
}

func TestPasswdFind(t *testing.T) {
	path := writeTemp(t, "passwd", passwdSeed)
	pw, err := LoadPasswd(path)
	require.NoError(t, err)

	root := pw.Find("root")
	require.NotNil(t, root)
	assert.Equal(t, 0, root.UID)
	assert.Equal(t, "/root", root.Home)
	assert.Equal(t, "/bin/bash", root.Shell)

	byUID := pw.FindByUID(1)
	require.NotNil(t, byUID)
	assert.Equal(t, "bin", byUID.Name)

	assert.Nil(t, pw.Find("nobody"))
	assert.Nil(t, pw.FindByUID(100200))
}

func TestPasswdAdd(t *testing.T) {
	path := writeTemp(t, "passwd", passwdSeed)
	pw, err := LoadPasswd(path)
	require.NoError(t, err)

	e := PasswdEntry{Name: "user200", Passwd: "x", UID: 100200, GID: 100200,
		Home: "/cluster-data/user-homes/user200", Shell: "/bin/bash"}
	require.NoError(t, pw.Add(e))

	assert.Contains(t, string(pw.Bytes()),
		"user200:x:100200:100200::/cluster-data/user-homes/user200:/bin/bash\n")
	assert.Contains(t, string(pw.Bytes()), "# system accounts below\n")
}

func TestPasswdAddRejectsDuplicates(t *testing.T) {
	path := writeTemp(t, "passwd", passwdSeed)
	pw, err := LoadPasswd(path)
	require.NoError(t, err)

	err = pw.Add(PasswdEntry{Name: "root", UID: 100000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	err = pw.Add(PasswdEntry{Name: "rootalike", UID: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uid already in use")
}

func TestLoadShadowPadsShortLines(t *testing.T) {
	path := writeTemp(t, "shadow", "root:*:19000\n")
	sh, err := LoadShadow(path)
	require.NoError(t, err)

	e := sh.Find("root")
	require.NotNil(t, e)
	assert.Equal(t, "*", e.Hash)
	assert.Equal(t, "19000", e.LastChange)
	assert.Equal(t, "", e.Expire)
	assert.Equal(t, "root:*:19000::::::\n", string(sh.Bytes()))
}

func TestGroupRoundTripAndAdd(t *testing.T) {
	seed := "root:x:0:\nsudo:x:27:alice,bob\n"
	path := writeTemp(t, "group", seed)
	gr, err := LoadGroup(path)
	require.NoError(t, err)
	assert.Equal(t, seed, string(gr.Bytes()))

	sudo := gr.Find("sudo")
	require.NotNil(t, sudo)
	assert.Equal(t, []string{"alice", "bob"}, sudo.Members)

	require.NoError(t, gr.Add(GroupEntry{Name: "user200", Passwd: "x", GID: 100200}))
	assert.Contains(t, string(gr.Bytes()), "user200:x:100200:\n")

	err = gr.Add(GroupEntry{Name: "other", GID: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gid already exists")
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("user200"))
	assert.True(t, ValidUsername("_svc-account"))
	assert.False(t, ValidUsername("200user"))
	assert.False(t, ValidUsername("User"))
	assert.False(t, ValidUsername("has space"))
	assert.False(t, ValidUsername(""))
}
