package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAvatar stores an employee profile image
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadDocument stores an employee document (contract, ID proof, tax declaration)
	UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error)

	// UploadReturnExport stores a generated statutory return export
	UploadReturnExport(ctx context.Context, returnID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var (
	imageExts    = []string{".jpg", ".jpeg", ".png"}
	documentExts = []string{".pdf", ".jpg", ".jpeg", ".png"}
	exportExts   = []string{".csv", ".txt", ".pdf"}
)

func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, imageExts)
	if err != nil {
		return "", err
	}

	path := filepath.Join("avatars", employeeID, uniqueName(employeeID, ext))
	return s.storage.Upload(ctx, file, path, contentTypeFor(ext))
}

func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error) {
	ext, err := validateExt(filename, documentExts)
	if err != nil {
		return "", err
	}
	if documentType == "" {
		documentType = "general"
	}

	path := filepath.Join("documents", employeeID, documentType, uniqueName(employeeID, ext))
	return s.storage.Upload(ctx, file, path, contentTypeFor(ext))
}

func (s *fileServiceImpl) UploadReturnExport(ctx context.Context, returnID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, exportExts)
	if err != nil {
		return "", err
	}

	path := filepath.Join("returns", returnID, uniqueName(returnID, ext))
	return s.storage.Upload(ctx, file, path, contentTypeFor(ext))
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("file not found: %s", path)
	}
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

func validateExt(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", fmt.Errorf("invalid file type %q: only %s allowed", ext, strings.Join(allowed, ", "))
}

func uniqueName(prefix, ext string) string {
	return fmt.Sprintf("%s-%s%s", prefix, uuid.New().String(), ext)
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
