package mandala

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScreenshotDir is used when no directory has been set.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the canvas. It is written after the
// next draw. In single-shot mode that draw happens immediately.
func (s *Session) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
	s.RequestRedraw()
}

// SetScreenshotDir sets the directory screenshots are written to.
func (s *Session) SetScreenshotDir(dir string) {
	s.screenshotDir = dir
}

// ScreenshotDir returns the directory screenshots are written to.
func (s *Session) ScreenshotDir() string {
	if s.screenshotDir == "" {
		return DefaultScreenshotDir
	}
	return s.screenshotDir
}

// PendingScreenshots returns the number of queued captures.
func (s *Session) PendingScreenshots() int {
	return len(s.screenshots)
}

// flushScreenshots captures the canvas once for every queued label and
// writes each as a PNG file. Failures are logged and dropped.
func (s *Session) flushScreenshots() {
	if len(s.screenshots) == 0 {
		return
	}
	defer func() { s.screenshots = s.screenshots[:0] }()

	dir := s.ScreenshotDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", dir, "err", err)
		return
	}

	img := s.capture()
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshots {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot: write failed", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
	}
}

// capture reads the canvas and converts premultiplied RGBA to straight
// alpha.
func (s *Session) capture() *image.NRGBA {
	b := s.canvas.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	s.canvas.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	unpremultiply(img.Pix, pixels)
	return img
}

func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
