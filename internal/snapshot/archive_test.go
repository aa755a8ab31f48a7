package snapshot

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeTestDoc(t, src, "subjects.json", `{"DBMS":{}}`)
	writeTestDoc(t, src, "knowledge_base.json", `[]`)
	writeTestDoc(t, src, "chats/abc.json", `{"id":"abc"}`)
	writeTestDoc(t, src, "subjects.json.tmp", `partial`)
	writeTestDoc(t, src, "readme.txt", `not a document`)

	var buf bytes.Buffer
	size, err := WriteArchive(src, &buf)
	require.NoError(t, err)
	assert.Positive(t, size)
	assert.Equal(t, int64(buf.Len()), size)

	dst := t.TempDir()
	require.NoError(t, ExtractArchive(&buf, dst))

	got, err := os.ReadFile(filepath.Join(dst, "subjects.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"DBMS":{}}`, string(got))

	got, err = os.ReadFile(filepath.Join(dst, "chats", "abc.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc"}`, string(got))

	_, err = os.Stat(filepath.Join(dst, "subjects.json.tmp"))
	assert.True(t, os.IsNotExist(err), "temp files must not be archived")
	_, err = os.Stat(filepath.Join(dst, "readme.txt"))
	assert.True(t, os.IsNotExist(err), "non-document files must not be archived")
}

func TestExtractArchiveRejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	encoder, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	tw := tar.NewWriter(encoder)

	content := []byte(`{}`)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../evil.json",
		Mode:     0o644,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err = tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, encoder.Close())

	dst := t.TempDir()
	err = ExtractArchive(&buf, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes data dir")
}

func TestDirHasNoDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty, err := dirHasNoDocuments(dir)
	require.NoError(t, err)
	assert.True(t, empty)

	writeTestDoc(t, dir, "info.json", `{}`)
	empty, err = dirHasNoDocuments(dir)
	require.NoError(t, err)
	assert.False(t, empty)

	empty, err = dirHasNoDocuments(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.True(t, empty)
}
