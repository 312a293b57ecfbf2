// Package media saves uploaded image files on local disk and hands back the
// public reference they are served under.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"tours/internal/core/ports"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var _ ports.MediaStore = &DiskStore{}

// allowedExtensions are the image types the store accepts.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates dir if needed. urlPrefix is the public path the
// directory is served under, e.g. "/uploads".
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// Save writes content under a fresh random name that keeps the original
// extension and returns "<urlPrefix>/<name>".
func (s *DiskStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	name := id + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err = io.Copy(f, readerWithContext(ctx, content)); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Delete removes the upload behind ref. References outside urlPrefix are
// rejected.
func (s *DiskStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, ok := strings.CutPrefix(ref, s.urlPrefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrForeignReference, ref)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Dir is the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

// URLPrefix is the public path uploads are served under.
func (s *DiskStore) URLPrefix() string {
	return s.urlPrefix
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
