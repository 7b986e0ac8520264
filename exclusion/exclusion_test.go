package exclusion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmit_ExactKeys(t *testing.T) {
	x := New()
	x.AddKey("session:token")

	assert.True(t, x.Omit("session:token"))
	assert.False(t, x.Omit("session:tokens"))
	assert.False(t, x.Omit("other"))
}

func TestOmit_Patterns(t *testing.T) {
	x := New()
	require.NoError(t, x.AddPattern("^ip:"))

	assert.True(t, x.Omit("ip:1.2.3.4"))
	assert.False(t, x.Omit("ua:curl"))
}

func TestOmit_CaseSensitivePatterns(t *testing.T) {
	x := New()
	require.NoError(t, x.AddPattern("^ip:"))

	assert.False(t, x.Omit("IP:1.2.3.4"))
}

func TestAddPattern_Invalid(t *testing.T) {
	x := New()
	err := x.AddPattern("(")
	require.Error(t, err)
	assert.Equal(t, 0, x.Len())
}

func TestNone_OmitsNothing(t *testing.T) {
	assert.False(t, None.Omit(""))
	assert.False(t, None.Omit("anything"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	content := `
keys:
  - session:token
patterns:
  - "^ip:"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	x, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, x.Len())
	assert.True(t, x.Omit("session:token"))
	assert.True(t, x.Omit("ip:1.2.3.4"))
	assert.False(t, x.Omit("ua:curl"))
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("SECVARS_SCOPE", "session")

	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	content := "keys:\n  - ${SECVARS_SCOPE}:token\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	x, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, x.Omit("session:token"))
}

func TestLoadFile_BadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  - \"(\"\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
