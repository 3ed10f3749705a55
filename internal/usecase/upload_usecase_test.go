package usecase_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/infra/storage"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus IHDR is enough for sniffing
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func fileOf(name string, data []byte) usecase.UploadFile {
	return usecase.UploadFile{
		Filename: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func newUploadUsecase(t *testing.T) (*usecase.UploadUsecase, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir, "http://localhost:8080")
	require.NoError(t, err)
	ids := &fixedIDs{ids: []string{"img-1", "img-2", "img-3"}}
	return usecase.NewUploadUsecase(st, ids, nil), dir
}

func TestUploadUsecase_StoresImages(t *testing.T) {
	uc, dir := newUploadUsecase(t)

	out, err := uc.UploadImages(context.Background(), []usecase.UploadFile{
		fileOf("a.png", pngBytes),
		fileOf("b.png", pngBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://localhost:8080/media/img-1.png",
		"http://localhost:8080/media/img-2.png",
	}, out.URLs)

	got, err := os.ReadFile(filepath.Join(dir, "img-1.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got)
}

func TestUploadUsecase_RejectsNonImage(t *testing.T) {
	uc, _ := newUploadUsecase(t)

	_, err := uc.UploadImages(context.Background(), []usecase.UploadFile{fileOf("notes.txt", []byte("hola mundo"))})
	requireHTTPError(t, err, http.StatusUnsupportedMediaType)
}

func TestUploadUsecase_BatchStopsAtFirstFailure(t *testing.T) {
	uc, dir := newUploadUsecase(t)

	out, err := uc.UploadImages(context.Background(), []usecase.UploadFile{
		fileOf("a.png", pngBytes),
		fileOf("bad.txt", []byte("nope")),
		fileOf("c.png", pngBytes),
	})
	requireHTTPError(t, err, http.StatusUnsupportedMediaType)
	assert.Equal(t, []string{"http://localhost:8080/media/img-1.png"}, out.URLs)

	// the first object stays, the third was never attempted
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadUsecase_TooLarge(t *testing.T) {
	uc, _ := newUploadUsecase(t)

	big := make([]byte, usecase.MaxUploadBytes+1)
	copy(big, pngBytes)
	_, err := uc.UploadImages(context.Background(), []usecase.UploadFile{fileOf("big.png", big)})
	requireHTTPError(t, err, http.StatusRequestEntityTooLarge)
}

func TestUploadUsecase_NoFiles(t *testing.T) {
	uc, _ := newUploadUsecase(t)

	_, err := uc.UploadImages(context.Background(), nil)
	requireHTTPError(t, err, http.StatusBadRequest)
}

func TestUploadUsecase_DeleteImage(t *testing.T) {
	uc, _ := newUploadUsecase(t)
	_, err := uc.UploadImages(context.Background(), []usecase.UploadFile{fileOf("a.png", pngBytes)})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteImage(context.Background(), "img-1.png"))
	requireHTTPError(t, uc.DeleteImage(context.Background(), "img-1.png"), http.StatusNotFound)
	requireHTTPError(t, uc.DeleteImage(context.Background(), "../etc/passwd"), http.StatusBadRequest)
}
