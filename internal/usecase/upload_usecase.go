package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"storefront/internal/infra/logger"
	"storefront/internal/infra/storage"

	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadBytes = 10 << 20

var imageExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}

type UploadUsecase struct {
	storage storage.ImageStorage
	ids     IDGenerator
	log     *logger.Logger
}

func NewUploadUsecase(st storage.ImageStorage, ids IDGenerator, log *logger.Logger) *UploadUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadUsecase{storage: st, ids: ids, log: log.With("component", "UploadUsecase")}
}

// UploadImages stores files in order and stops at the first failure. Objects
// stored before the failure are kept.
func (u *UploadUsecase) UploadImages(ctx context.Context, files []UploadFile) (UploadResponse, error) {
	if len(files) == 0 {
		return UploadResponse{}, NewHTTPError(http.StatusBadRequest, "no files")
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := u.uploadOne(ctx, f)
		if err != nil {
			if len(urls) > 0 {
				u.log.Warn("upload batch aborted", "stored", len(urls), "failed_file", f.Filename)
			}
			return UploadResponse{URLs: urls}, err
		}
		urls = append(urls, url)
	}
	return UploadResponse{URLs: urls}, nil
}

func (u *UploadUsecase) uploadOne(ctx context.Context, f UploadFile) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", NewHTTPError(http.StatusBadRequest, fmt.Sprintf("no se pudo leer %s", f.Filename))
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxUploadBytes+1))
	if err != nil {
		return "", NewHTTPError(http.StatusBadRequest, fmt.Sprintf("no se pudo leer %s", f.Filename))
	}
	if len(data) > MaxUploadBytes {
		return "", NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("%s supera el tamaño máximo", f.Filename))
	}

	mt := mimetype.Detect(data)
	ext, ok := imageExt[mt.String()]
	if !ok {
		return "", NewHTTPError(http.StatusUnsupportedMediaType, fmt.Sprintf("%s no es una imagen válida", f.Filename))
	}

	name := u.ids.NewID() + "." + ext
	url, err := u.storage.Put(ctx, name, mt.String(), bytes.NewReader(data))
	if err != nil {
		u.log.Error("image upload failed", "file", f.Filename, "object", name, "error", err)
		return "", NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al subir %s", f.Filename))
	}
	return url, nil
}

func (u *UploadUsecase) DeleteImage(ctx context.Context, name string) error {
	err := u.storage.Delete(ctx, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrInvalidName):
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	case errors.Is(err, storage.ErrObjectNotFound):
		return NewHTTPError(http.StatusNotFound, "image not found")
	default:
		u.log.Error("image delete failed", "object", name, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
}
