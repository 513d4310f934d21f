package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_ToggleStarMutatesInPlace(t *testing.T) {
	d := New([]Card{{Front: "a"}, {Front: "b", Starred: true}})

	assert.True(t, d.ToggleStar(0))
	assert.False(t, d.ToggleStar(1))
	assert.Equal(t, 1, d.StarredCount())
	assert.True(t, d.Card(0).Starred)
	assert.False(t, d.Card(1).Starred)
}

func TestDeck_ToggleStarOutOfRangePanics(t *testing.T) {
	d := New([]Card{{Front: "a"}})
	assert.Panics(t, func() { d.ToggleStar(1) })
	assert.Panics(t, func() { d.ToggleStar(-1) })
}

func TestDeck_NewAndCardsCopy(t *testing.T) {
	src := []Card{{Front: "a"}}
	d := New(src)
	src[0].Front = "changed"
	assert.Equal(t, "a", d.Card(0).Front)

	out := d.Cards()
	out[0].Front = "changed"
	assert.Equal(t, "a", d.Card(0).Front)
}

func TestDeck_SaveIncludesMutations(t *testing.T) {
	d, err := Load(strings.NewReader("a,b\nc,d,starred\n"), DefaultCodec())
	require.NoError(t, err)

	d.ToggleStar(0)
	d.ToggleStar(1)

	var buf bytes.Buffer
	require.NoError(t, d.Save(&buf, DefaultCodec()))
	assert.Equal(t, "a,b,starred\nc,d\n", buf.String())
}

func TestLoad_FailureProducesNoDeck(t *testing.T) {
	d, err := Load(strings.NewReader(strings.Repeat("x", 20)+"\n"), Codec{MaxFieldSize: 4})
	assert.ErrorIs(t, err, ErrFieldTooLarge)
	assert.Nil(t, d)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultCodec())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open deck")
}

func TestSaveFile_ReplacesContentAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.csv.tns")
	long := "a very long front,a very long back,starred\nsecond,line\n"
	require.NoError(t, os.WriteFile(path, []byte(long), 0o600))

	d, err := LoadFile(path, DefaultCodec())
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	shorter := New([]Card{{Front: "x", Back: "y"}})
	require.NoError(t, SaveFile(path, shorter, DefaultCodec()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestSaveFile_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.csv")
	require.NoError(t, SaveFile(path, New([]Card{{Front: "a", Back: "b", Starred: true}}), DefaultCodec()))

	d, err := LoadFile(path, DefaultCodec())
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "a", Back: "b", Starred: true}}, d.Cards())
}

func TestSaveFile_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "deck.csv")
	err := SaveFile(path, New(nil), DefaultCodec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create temp deck")
}

func TestName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/documents/vocab.csv.tns", "vocab"},
		{"/documents/VOCAB.CSV", "VOCAB"},
		{"spanish.tns", "spanish"},
		{"notes.txt", "notes.txt"},
		{".csv", ".csv"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.path))
		})
	}
}
