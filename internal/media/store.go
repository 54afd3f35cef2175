package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/lumiere-salon/salon-scheduler/internal/objstore"
)

const maxWidth = 1600

// Store processa fotos de serviços: decodifica JPEG/PNG, reduz para
// no máximo 1600px de largura e regrava em WebP. Grava em disco e,
// com S3 configurado, publica lá e devolve a URL pública.
type Store struct {
	dir      string
	uploader *objstore.Uploader
}

func NewStore(dir string, uploader *objstore.Uploader) *Store {
	return &Store{
		dir:      dir,
		uploader: uploader,
	}
}

func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}

	img = downscale(img, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".webp"
	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	if s.uploader != nil {
		url, err := s.uploader.Upload(ctx, "uploads/"+name, bytes.NewReader(buf.Bytes()), "image/webp")
		if err == nil {
			return url, nil
		}
		// a cópia local já existe; seguimos com a URL local
		log.Println("media upload to S3 failed:", err)
	}

	return "/uploads/" + name, nil
}

func downscale(img image.Image, max int) image.Image {
	b := img.Bounds()
	if b.Dx() <= max {
		return img
	}

	h := b.Dy() * max / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, max, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
