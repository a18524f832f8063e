package storage

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisk(t *testing.T) *localDisk {
	t.Helper()
	return &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/storage"}
}

func TestLocalDiskPutGet(t *testing.T) {
	d := newTestDisk(t)

	require.NoError(t, d.Put("products/image/1-ring.jpg", []byte("jpeg")))
	assert.True(t, d.Exists("products/image/1-ring.jpg"))

	data, err := d.Get("products/image/1-ring.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	size, err := d.Size("products/image/1-ring.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)
}

func TestLocalDiskGetStream(t *testing.T) {
	d := newTestDisk(t)
	require.NoError(t, d.Put("a/b.txt", []byte("stream me")))

	rc, err := d.GetStream("a/b.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "stream me", string(data))
}

func TestLocalDiskURL(t *testing.T) {
	d := newTestDisk(t)
	assert.Equal(t,
		"http://localhost:8080/storage/slide/desktop/1-banner.jpg",
		d.URL("slide/desktop/1-banner.jpg"))
}

func TestLocalDiskDelete(t *testing.T) {
	d := newTestDisk(t)
	require.NoError(t, d.Put("x.txt", []byte("x")))
	require.NoError(t, d.Delete("x.txt"))
	assert.False(t, d.Exists("x.txt"))

	// Deleting a missing file is not an error.
	assert.NoError(t, d.Delete("x.txt"))
}

func TestLocalDiskFiles(t *testing.T) {
	d := newTestDisk(t)
	require.NoError(t, d.Put("dir/a.txt", []byte("a")))
	require.NoError(t, d.Put("dir/b.txt", []byte("b")))
	require.NoError(t, d.Put("dir/sub/c.txt", []byte("c")))

	files, err := d.Files("dir")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dir/a.txt", "dir/b.txt"}, files)
}

func TestManagerUpload(t *testing.T) {
	d := newTestDisk(t)
	RegisterDisk("local-test", d)
	SetDefault("local-test")
	t.Cleanup(func() { SetDefault("local") })

	url, err := Upload("products/image/", "1700000000000-ring.jpg", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t,
		"http://localhost:8080/storage/products/image/1700000000000-ring.jpg", url)
	assert.True(t, d.Exists("products/image/1700000000000-ring.jpg"))
}
