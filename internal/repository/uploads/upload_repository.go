package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type UploadConfig struct {
	Dir        string
	PublicPath string
}

// FileRepository stores payment-proof images on the local filesystem under
// a public uploads directory and hands back the URL path recorded on the
// order row.
type FileRepository struct {
	uploadConfig UploadConfig
}

func NewFileRepository(cfg UploadConfig) *FileRepository {
	return &FileRepository{
		cfg,
	}
}

// Save writes the uploaded content as {orderID}-{unixMillis}.{ext}. The
// timestamp keeps concurrent uploads from clobbering each other's files,
// though the order row itself is last-write-wins.
func (r *FileRepository) Save(orderID, originalName string, content io.Reader) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	if ext == "" {
		ext = "bin"
	}

	fileName := fmt.Sprintf("%s-%d.%s", orderID, time.Now().UnixMilli(), ext)

	if err := os.MkdirAll(r.uploadConfig.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(r.uploadConfig.Dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return r.uploadConfig.PublicPath + "/" + fileName, nil
}
