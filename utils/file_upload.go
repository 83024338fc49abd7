package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedExtensions is the upload allow-list for proposals and documents.
var AllowedExtensions = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"doc":  "application/msword",
	"xls":  "application/vnd.ms-excel",
}

// FileStore saves uploads under a base directory with a size cap.
type FileStore struct {
	BaseDir     string
	MaxFileSize int64
}

// GetFileExtension returns the lowercased extension without the dot.
func GetFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return strings.ToLower(filename[idx+1:])
	}
	return ""
}

// ValidateFile checks the filename against the extension allow-list.
func ValidateFile(filename string) error {
	if filename == "" {
		return fmt.Errorf("no file provided")
	}
	ext := GetFileExtension(filename)
	if _, ok := AllowedExtensions[ext]; !ok {
		allowed := make([]string, 0, len(AllowedExtensions))
		for e := range AllowedExtensions {
			allowed = append(allowed, e)
		}
		return fmt.Errorf("file type not allowed. Allowed types: %s", strings.Join(allowed, ", "))
	}
	return nil
}

// SaveFile streams the upload to disk under a generated unique name and
// returns the relative URL. A file that grows past the size cap is removed
// before the error is returned.
func (s *FileStore) SaveFile(src io.Reader, filename, subdirectory string) (string, error) {
	if err := ValidateFile(filename); err != nil {
		return "", err
	}

	dir := filepath.Join(s.BaseDir, subdirectory)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	uniqueName := fmt.Sprintf("%s.%s", uuid.New().String(), GetFileExtension(filename))
	path := filepath.Join(dir, uniqueName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	var written int64
	buf := make([]byte, 8192)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > s.MaxFileSize {
				dst.Close()
				os.Remove(path)
				return "", fmt.Errorf("file size exceeds maximum allowed size of %.1fMB", float64(s.MaxFileSize)/(1024*1024))
			}
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				dst.Close()
				os.Remove(path)
				return "", fmt.Errorf("failed to save file: %w", writeErr)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			dst.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to save file: %w", readErr)
		}
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", subdirectory, uniqueName), nil
}

// DeleteFile removes a previously saved file, best effort. The relative URL
// is the value SaveFile returned.
func (s *FileStore) DeleteFile(fileURL string) bool {
	rel := strings.TrimPrefix(fileURL, "/uploads/")
	if rel == fileURL || rel == "" {
		return false
	}
	path := filepath.Join(s.BaseDir, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return os.Remove(path) == nil
}

// FileSizeOnDisk reports the stored size of a saved upload, 0 if missing.
func (s *FileStore) FileSizeOnDisk(fileURL string) int64 {
	rel := strings.TrimPrefix(fileURL, "/uploads/")
	if rel == fileURL {
		return 0
	}
	info, err := os.Stat(filepath.Join(s.BaseDir, filepath.FromSlash(rel)))
	if err != nil {
		return 0
	}
	return info.Size()
}

// FormatFileSize renders a byte count the way the UI shows it, e.g. "2.4 MB".
func FormatFileSize(sizeBytes int64) string {
	switch {
	case sizeBytes < 1024:
		return fmt.Sprintf("%d B", sizeBytes)
	case sizeBytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(sizeBytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(sizeBytes)/(1024*1024))
	}
}
