package lobster

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compress writes data to name with the writer w builds over the file.
func compress(Te *testing.T, name string, data []byte, w func(io.Writer) io.WriteCloser) {
	Te.Helper()
	var buf bytes.Buffer
	c := w(&buf)
	_, err := c.Write(data)
	require.NoError(Te, err)
	require.NoError(Te, c.Close())
	require.NoError(Te, os.WriteFile(name, buf.Bytes(), 0644))
}

func TestReadTextCompressed(Te *testing.T) {
	orig, err := os.ReadFile("test/ICOHPLIST.lobster")
	require.NoError(Te, err)
	dir := Te.TempDir()
	writers := map[string]func(io.Writer) io.WriteCloser{
		".gz":   func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		".zlib": func(w io.Writer) io.WriteCloser { return zlib.NewWriter(w) },
		".zst": func(w io.Writer) io.WriteCloser {
			z, err := zstd.NewWriter(w)
			require.NoError(Te, err)
			return z
		},
		".br":  func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) },
		".lz4": func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
		".sz":  func(w io.Writer) io.WriteCloser { return snappy.NewBufferedWriter(w) },
	}
	for ext, w := range writers {
		name := filepath.Join(dir, ICOHPLISTName+ext)
		compress(Te, name, orig, w)
		text, err := ReadText(name)
		require.NoError(Te, err, ext)
		assert.Equal(Te, string(orig), text, ext)
		I, err := NewIcohplist(false, name)
		require.NoError(Te, err, ext)
		assert.Equal(Te, 3, I.Len(), ext)
		require.NoError(Te, os.Remove(name))
	}
}

func TestReadTextErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := ReadText(filepath.Join(dir, "none"))
	assert.ErrorIs(Te, err, os.ErrNotExist)
	name := filepath.Join(dir, "ICOHPLIST.lobster.gz")
	require.NoError(Te, os.WriteFile(name, []byte("not gzipped"), 0644))
	_, err = ReadText(name)
	assert.Error(Te, err)
}

func TestDecompressPlain(Te *testing.T) {
	r, err := Decompress("COHPCAR.lobster", bytes.NewReader([]byte("text")))
	require.NoError(Te, err)
	b, err := io.ReadAll(r)
	require.NoError(Te, err)
	assert.Equal(Te, "text", string(b))
	assert.NoError(Te, r.Close())
}

func TestFindFile(Te *testing.T) {
	p, err := FindFile("test", ICOHPLISTName)
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join("test", ICOHPLISTName), p)
	p, err = FindFile("test/gz", ICOHPLISTName)
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join("test/gz", ICOHPLISTName+".gz"), p)
	_, err = FindFile("test/gz", ICOOPLISTName)
	assert.Error(Te, err)
	//directories don't count
	_, err = FindFile(".", "test")
	assert.Error(Te, err)
}
