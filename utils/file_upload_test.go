package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxSize int64) *FileStore {
	t.Helper()
	return &FileStore{BaseDir: t.TempDir(), MaxFileSize: maxSize}
}

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", GetFileExtension("proposal.pdf"))
	assert.Equal(t, "xlsx", GetFileExtension("Budget.XLSX"))
	assert.Equal(t, "gz", GetFileExtension("archive.tar.gz"))
	assert.Equal(t, "", GetFileExtension("noextension"))
	assert.Equal(t, "", GetFileExtension("trailing."))
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile("scan.pdf"))
	assert.NoError(t, ValidateFile("photo.JPG"))
	assert.Error(t, ValidateFile("script.exe"))
	assert.Error(t, ValidateFile(""))
}

func TestSaveFileAndRoundTrip(t *testing.T) {
	store := newTestStore(t, 1024)

	url, err := store.SaveFile(strings.NewReader("hello world"), "note.pdf", "documents")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/documents/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	assert.Equal(t, int64(len("hello world")), store.FileSizeOnDisk(url))
	assert.True(t, store.DeleteFile(url))
	assert.False(t, store.DeleteFile(url), "second delete finds nothing")
	assert.Equal(t, int64(0), store.FileSizeOnDisk(url))
}

func TestSaveFileRejectsDisallowedType(t *testing.T) {
	store := newTestStore(t, 1024)

	_, err := store.SaveFile(strings.NewReader("x"), "malware.exe", "documents")
	assert.Error(t, err)
}

func TestSaveFileSizeCap(t *testing.T) {
	store := newTestStore(t, 10)

	_, err := store.SaveFile(strings.NewReader("this is well over ten bytes"), "big.pdf", "documents")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")

	// The partial file must not be left behind.
	entries, err := os.ReadDir(filepath.Join(store.BaseDir, "documents"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteFileIgnoresForeignPaths(t *testing.T) {
	store := newTestStore(t, 1024)

	assert.False(t, store.DeleteFile("/etc/passwd"))
	assert.False(t, store.DeleteFile(""))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "2.4 MB", FormatFileSize(2516582))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
