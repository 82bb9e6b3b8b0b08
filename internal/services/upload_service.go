package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	socialink_errors "socialink/pkg/errors"
)

// UploadService writes multipart uploads to a local directory. Files keep
// their original base name, so two uploads sharing a name overwrite each
// other. Known limitation, kept intentionally.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadService{dir: dir}, nil
}

// Save stores the uploaded file under its original base name and returns the
// stored name. Path separators in the client-supplied name are stripped.
func (s *UploadService) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", socialink_errors.ErrInvalidInput
	}

	name := filepath.Base(filepath.Clean(fh.Filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", socialink_errors.ErrInvalidInput
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}

// Dir returns the directory uploads are written to.
func (s *UploadService) Dir() string {
	return s.dir
}
