package image_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecfw/fl2tool/internal/fl2"
	"github.com/ecfw/fl2tool/internal/fs"
	"github.com/ecfw/fl2tool/internal/image"
	"github.com/stretchr/testify/require"
)

// writeBareContainer writes a 196608-byte container that is nothing but the
// image, with the copyright marker in place and a recognizable payload.
func writeBareContainer(t *testing.T, dir string) (string, []byte) {
	t.Helper()

	data := make([]byte, 196608)
	copy(data[0x268:], fl2.CopyrightMarker)
	for i := 0x1000; i < 0x2000; i++ {
		data[i] = byte(i)
	}

	path := filepath.Join(dir, "test.fl2")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func openSource(t *testing.T, path string) (fl2.Source, fs.File) {
	t.Helper()

	f, err := fs.Open(path)
	require.NoError(t, err)

	info, err := f.Stat()
	require.NoError(t, err)

	return fl2.NewSource(f, uint64(info.Size())), f
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	path, data := writeBareContainer(t, dir)

	src, f := openSource(t, path)
	defer f.Close()

	res, err := fl2.Detect(src)
	require.NoError(t, err)
	require.Equal(t, "NoPrefix", res.Variant)

	outPath := filepath.Join(dir, "test.img")
	require.NoError(t, image.Extract(src, res, outPath))

	img, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, data[res.Offset:res.Offset+res.Size], img)
}

func TestInsert(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeBareContainer(t, dir)

	src, f := openSource(t, path)
	res, err := fl2.Detect(src)
	f.Close()
	require.NoError(t, err)

	img := make([]byte, res.Size)
	copy(img[0x268:], fl2.CopyrightMarker)
	for i := range img[:0x100] {
		img[i] = byte(i ^ 0x5A)
	}

	require.NoError(t, image.Insert(path, res, img))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, img, data[res.Offset:res.Offset+res.Size])

	// The rewritten container must still be recognized as the same variant.
	src, f = openSource(t, path)
	defer f.Close()

	res2, err := fl2.Detect(src)
	require.NoError(t, err)
	require.Equal(t, res, res2)
}

func TestInsertSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeBareContainer(t, dir)

	src, f := openSource(t, path)
	res, err := fl2.Detect(src)
	f.Close()
	require.NoError(t, err)

	err = image.Insert(path, res, make([]byte, res.Size-1))
	require.Error(t, err)
}
