package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadBaseDir = "uploads"
	maxImageWidth = 1600
	webpQuality   = 80
)

// SaveImageAsWebP decodes an uploaded image, resizes it down to maxImageWidth
// when wider, re-encodes as WebP and writes it under uploads/<folder>/.
// Returns the public path of the stored file.
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"

	dst := filepath.Join(uploadBaseDir, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return "/" + filepath.ToSlash(dst), nil
}

// RemoveUploadedFile deletes a previously stored upload; missing files are not
// an error.
func RemoveUploadedFile(publicPath string) error {
	p := strings.TrimPrefix(publicPath, "/")
	if !strings.HasPrefix(p, uploadBaseDir+"/") {
		return nil
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sanitizeFilename(filename string) string {
	// drop everything except letters, digits, dot, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}
