package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"

	_ "image/gif"  // register GIF decoder
	_ "image/png"  // register PNG decoder
	"instaclone/internal/config"
	"instaclone/internal/models"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	DefaultImageUploadDir       = "/tmp/instaclone/uploads/images"
	DefaultImageMaxUploadSizeMB = 10
	// MaxImageSize bounds both output dimensions; images are scaled to fit
	// inside MaxImageSize x MaxImageSize, never enlarged.
	MaxImageSize = 800
	JPEGQuality  = 80
	WebPQuality  = 70
)

// ImageRef is the storable result of a transcode: the URL path a post or
// avatar stores, plus the webp alternate.
type ImageRef struct {
	URL     string `json:"url"`
	WebPURL string `json:"webp_url"`
	Hash    string `json:"hash"`
}

// ImageService normalizes uploaded images into content-addressed JPEG and
// WebP renditions. It is the "transcode" collaborator the post flow calls
// before CreatePost.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

// NewImageService returns a new ImageService.
func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := DefaultImageUploadDir
	maxUploadSizeMB := DefaultImageMaxUploadSizeMB

	if cfg != nil {
		if cfg.ImageUploadDir != "" {
			uploadDir = cfg.ImageUploadDir
		}
		if cfg.ImageMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.ImageMaxUploadSizeMB
		}
	}

	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadDir returns the directory renditions are written to.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// Transcode validates, resizes, and re-encodes the raw upload, writing
// content-addressed renditions to the upload directory. Storage failures are
// dependency failures, not validation failures.
func (s *ImageService) Transcode(raw []byte) (*ImageRef, error) {
	if len(raw) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(raw)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	if !isAllowedImageMIME(http.DetectContentType(raw)) {
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}

	resized := fitInside(decoded, MaxImageSize)

	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, resized, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, models.NewInternalError(err)
	}

	var webpBuf bytes.Buffer
	if err := webp.Encode(&webpBuf, resized, &webp.Options{Quality: WebPQuality}); err != nil {
		return nil, models.NewInternalError(err)
	}

	sum := sha256.Sum256(jpegBuf.Bytes())
	hash := hex.EncodeToString(sum[:])

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, models.NewDependencyError("image storage", err)
	}
	if err := writeAtomic(filepath.Join(s.uploadDir, hash+".jpg"), jpegBuf.Bytes()); err != nil {
		return nil, models.NewDependencyError("image storage", err)
	}
	if err := writeAtomic(filepath.Join(s.uploadDir, hash+".webp"), webpBuf.Bytes()); err != nil {
		return nil, models.NewDependencyError("image storage", err)
	}

	return &ImageRef{
		URL:     "/media/i/" + hash + ".jpg",
		WebPURL: "/media/i/" + hash + ".webp",
		Hash:    hash,
	}, nil
}

// fitInside scales src down to fit within max x max, preserving aspect
// ratio. Images already inside the bound are returned untouched.
func fitInside(src image.Image, max int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return src
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// writeAtomic writes via a uniquely named temp file and renames into place
// so readers never observe a partial rendition.
func writeAtomic(path string, data []byte) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func isAllowedImageMIME(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
