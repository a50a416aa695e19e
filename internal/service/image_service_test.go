package service

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"instaclone/internal/config"
	"instaclone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageService(t *testing.T) *ImageService {
	t.Helper()
	return NewImageService(&config.Config{
		ImageUploadDir:       t.TempDir(),
		ImageMaxUploadSizeMB: 1,
	})
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTranscodeWritesRenditions(t *testing.T) {
	svc := newTestImageService(t)

	ref, err := svc.Transcode(encodePNG(t, 100, 50))
	require.NoError(t, err)

	assert.Len(t, ref.Hash, 64)
	assert.True(t, strings.HasPrefix(ref.URL, "/media/i/"))
	assert.True(t, strings.HasSuffix(ref.URL, ".jpg"))
	assert.True(t, strings.HasSuffix(ref.WebPURL, ".webp"))

	for _, name := range []string{ref.Hash + ".jpg", ref.Hash + ".webp"} {
		info, err := os.Stat(filepath.Join(svc.UploadDir(), name))
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestTranscodeIsContentAddressed(t *testing.T) {
	svc := newTestImageService(t)
	raw := encodePNG(t, 64, 64)

	first, err := svc.Transcode(raw)
	require.NoError(t, err)
	second, err := svc.Transcode(raw)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, first.URL, second.URL)
}

func TestTranscodeResizesToFit(t *testing.T) {
	svc := newTestImageService(t)

	ref, err := svc.Transcode(encodePNG(t, 1600, 900))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(svc.UploadDir(), ref.Hash+".jpg"))
	require.NoError(t, err)
	defer f.Close()

	decoded, err := jpeg.Decode(f)
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, MaxImageSize, bounds.Dx())
	assert.Equal(t, 450, bounds.Dy())
}

func TestTranscodeKeepsSmallImages(t *testing.T) {
	svc := newTestImageService(t)

	ref, err := svc.Transcode(encodePNG(t, 320, 240))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(svc.UploadDir(), ref.Hash+".jpg"))
	require.NoError(t, err)
	defer f.Close()

	decoded, err := jpeg.Decode(f)
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 240, bounds.Dy())
}

func TestTranscodeRejectsBadInput(t *testing.T) {
	svc := newTestImageService(t)

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "Empty", raw: nil},
		{name: "NotAnImage", raw: []byte("definitely not pixels")},
		{name: "TooLarge", raw: make([]byte, 2*1024*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transcode(tt.raw)
			require.Error(t, err)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}
