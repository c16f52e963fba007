package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileServiceProvider defines the interface for user image storage.
type FileServiceProvider interface {
	SaveUserImage(originalName string, src io.Reader) (string, error)
	UserImagePath(filename string) (string, error)
	DeleteUserImage(filename string) error
}

// FileService stores user images on the local filesystem under a single
// upload directory.
type FileService struct {
	uploadDir string
}

// NewFileService creates a FileService rooted at uploadDir, creating the
// directory if needed.
func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{uploadDir: uploadDir}, nil
}

// SaveUserImage writes the uploaded content under a random filename,
// keeping the original extension, and returns the stored filename.
func (s *FileService) SaveUserImage(originalName string, src io.Reader) (string, error) {
	filename := uuid.New().String() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filename, nil
}

// UserImagePath resolves a stored filename to its path on disk. The input is
// reduced to its base name so a request cannot reach outside the upload dir.
func (s *FileService) UserImagePath(filename string) (string, error) {
	path := filepath.Join(s.uploadDir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	return path, nil
}

// DeleteUserImage removes a stored image.
func (s *FileService) DeleteUserImage(filename string) error {
	err := os.Remove(filepath.Join(s.uploadDir, filepath.Base(filename)))
	if os.IsNotExist(err) {
		return ErrFileNotFound
	}
	return err
}
