package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashgen/internal/crypto"
	"hashgen/internal/domain"
	"hashgen/internal/store"
)

func TestDeclaration_SortedAndIndented(t *testing.T) {
	hashes := domain.HashList{crypto.Digest("zed"), crypto.Digest("amy"), crypto.Digest("amy")}
	sorted := hashes.Sorted()

	got := store.Declaration("valid_hashes", hashes, "    ")

	want := "    valid_hashes = [\n" +
		"        \"" + string(sorted[0]) + "\",\n" +
		"        \"" + string(sorted[1]) + "\",\n" +
		"        \"" + string(sorted[2]) + "\",\n" +
		"    ]\n"
	assert.Equal(t, want, got)
	assert.Equal(t, crypto.Digest("zed"), hashes[0], "input must not be reordered")
}

func TestDeclaration_Empty(t *testing.T) {
	assert.Equal(t, "valid_hashes = [\n]\n", store.Declaration("valid_hashes", nil, ""))
}

func TestHashFileStore_SaveWritesHeaderAndDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultFilename)
	s := store.NewHashFileStore(store.Options{Path: path})

	h := crypto.Digest("aliceb")
	require.NoError(t, s.Save(domain.HashList{h}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "# SHA256 hashes of student usernames\n" +
		"# Generated for DS217 Assignment 01\n" +
		"# DO NOT commit the raw email list!\n" +
		"\n" +
		"valid_hashes = [\n" +
		"    \"" + string(h) + "\",\n" +
		"]\n"
	assert.Equal(t, want, string(b))
}

func TestHashFileStore_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are much longer than the new file\n"), 0o644))

	s := store.NewHashFileStore(store.Options{Path: path, VarName: "hashes", Label: "Lab 2", Digest: "SHA3-256"})
	require.NoError(t, s.Save(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale")
	assert.True(t, strings.HasPrefix(string(b), "# SHA3-256 hashes of student usernames\n# Generated for Lab 2\n"))
	assert.True(t, strings.HasSuffix(string(b), "hashes = [\n]\n"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestHashFileStore_LoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := store.NewHashFileStore(store.Options{Path: path})

	hashes := domain.HashList{crypto.Digest("b"), crypto.Digest("a"), crypto.Digest("b")}
	require.NoError(t, s.Save(hashes))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, hashes.Sorted(), got)
}

func TestHashFileStore_LoadMissing(t *testing.T) {
	s := store.NewHashFileStore(store.Options{Path: filepath.Join(t.TempDir(), "missing.txt")})

	_, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestHashFileStore_SaveIntoMissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	s := store.NewHashFileStore(store.Options{Path: path})

	require.Error(t, s.Save(domain.HashList{crypto.Digest("a")}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestHashFileStore_SaveTwiceKeepsLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := store.NewHashFileStore(store.Options{Path: path})

	require.NoError(t, s.Save(domain.HashList{crypto.Digest("a"), crypto.Digest("b")}))
	require.NoError(t, s.Save(domain.HashList{crypto.Digest("c")}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.HashList{crypto.Digest("c")}, got)
}
