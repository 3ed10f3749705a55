package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidName    = errors.New("invalid object name")
)

// ImageStorage holds uploaded product and blog images.
type ImageStorage interface {
	Put(ctx context.Context, name string, contentType string, r io.Reader) (publicURL string, err error)
	Delete(ctx context.Context, name string) error
	PublicURL(name string) string
}

// object names are generated as <uuid>.<ext>; nothing with a path separator gets through
var objectNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

func ValidateName(name string) error {
	if !objectNameRe.MatchString(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
