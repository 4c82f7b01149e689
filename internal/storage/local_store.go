package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // decoder WebP untuk foto dari Android
)

const (
	AttendanceDir = "attendance"
	LeaveDir      = "leave_attachments"

	defaultMaxWidth = 1280
	jpegQuality     = 85
)

var (
	ErrInvalidImage  = errors.New("unsupported or corrupt image")
	ErrInvalidBase64 = errors.New("invalid base64 payload")
)

// LocalStore menyimpan file di disk di bawah Root. Referensi yang dikembalikan
// berupa path relatif (mis. "attendance/checkin_...jpg") yang disajikan lewat
// /uploads.
type LocalStore struct {
	Root     string
	MaxWidth int

	now func() time.Time
}

func NewLocalStore(root string, maxWidth int) *LocalStore {
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	return &LocalStore{Root: root, MaxWidth: maxWidth, now: time.Now}
}

// Save mendecode gambar (JPEG/PNG/GIF/BMP/TIFF/WebP), memperkecil lebarnya jika
// perlu, lalu menyimpannya sebagai JPEG di folder attendance.
func (s *LocalStore) Save(ctx context.Context, data []byte, prefix string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if img.Bounds().Dx() > s.MaxWidth {
		img = imaging.Resize(img, s.MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return s.write(ctx, AttendanceDir, s.filename(prefix, ".jpg"), buf.Bytes())
}

// SaveFile menyimpan bytes apa adanya, dipakai untuk lampiran izin/cuti.
func (s *LocalStore) SaveFile(ctx context.Context, dir string, data []byte, prefix, ext string) (string, error) {
	return s.write(ctx, dir, s.filename(prefix, ext), data)
}

func (s *LocalStore) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s_%s%s", prefix, s.now().Format("20060102150405"), uuid.NewString(), ext)
}

func (s *LocalStore) write(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref := path.Join(dir, name)
	full, err := s.resolve(ref)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// tulis ke file sementara lalu rename, supaya tidak ada file setengah jadi
	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", ref, err)
	}
	if err := os.Rename(tmp, full); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", ref, err)
	}
	return ref, nil
}

func (s *LocalStore) resolve(ref string) (string, error) {
	clean := path.Clean("/" + ref)
	if clean == "/" || strings.Contains(ref, "..") {
		return "", fmt.Errorf("invalid storage reference %q", ref)
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean)), nil
}

// DecodeBase64 menerima base64 biasa maupun data URL
// ("data:image/jpeg;base64,....").
func DecodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, ErrInvalidBase64
		}
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// sebagian klien mengirim tanpa padding
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "=")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
	}
	if len(data) == 0 {
		return nil, ErrInvalidBase64
	}
	return data, nil
}
