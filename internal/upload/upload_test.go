package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	s, err := New(t.TempDir(), []string{"pdf", "jpg", "jpeg", "png"})
	require.NoError(t, err)

	return s
}

func TestStore_Allowed(t *testing.T) {
	s := newStore(t)

	assert.True(t, s.Allowed("convenio.pdf"))
	assert.True(t, s.Allowed("FOTO.JPG"))
	assert.False(t, s.Allowed("script.exe"))
	assert.False(t, s.Allowed("noextension"))
	assert.False(t, s.Allowed(""))
}

func TestStore_Save_PrefixesAndSanitizes(t *testing.T) {
	s := newStore(t)

	stored, err := s.Save("mi convenio (1).pdf", strings.NewReader("content"))
	require.NoError(t, err)

	// uuid prefix, underscore, sanitized original name
	assert.Regexp(t, `^[0-9a-f-]{36}_mi_convenio__1_\.pdf$`, stored)

	path, err := s.Path(stored)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestStore_Save_SameNameNeverCollides(t *testing.T) {
	s := newStore(t)

	first, err := s.Save("pago.jpg", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := s.Save("pago.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_Save_RejectsBadExtension(t *testing.T) {
	s := newStore(t)

	_, err := s.Save("evil.sh", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrBadExtension)
}

func TestStore_Path_RejectsTraversal(t *testing.T) {
	s := newStore(t)

	for _, name := range []string{"", "../secret.pdf", "a/b.pdf", "..", "dir" + string(filepath.Separator) + "f.pdf"} {
		_, err := s.Path(name)
		assert.ErrorIs(t, err, ErrBadFilename, name)
	}
}

func TestStore_Remove_MissingFileIsFine(t *testing.T) {
	s := newStore(t)

	assert.NoError(t, s.Remove("never-stored.pdf"))
	assert.ErrorIs(t, s.Remove("../x.pdf"), ErrBadFilename)
}

func TestStore_Remove_DeletesStoredFile(t *testing.T) {
	s := newStore(t)

	stored, err := s.Save("gestion.png", strings.NewReader("img"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(stored))

	path, err := s.Path(stored)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
