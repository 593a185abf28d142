package writer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// LoadLogo reads a logo file and returns it as a PNG image anchored at
// logo.Cell, resized by logo.Scale. A missing file yields an error matching
// fs.ErrNotExist so callers can skip it.
func LoadLogo(logo models.Logo) (models.Image, error) {
	if _, err := os.Stat(logo.Path); err != nil {
		return models.Image{}, err
	}
	img, err := imaging.Open(logo.Path)
	if err != nil {
		return models.Image{}, fmt.Errorf("decode logo %s: %w", logo.Path, err)
	}
	if logo.Scale > 0 && logo.Scale != 1 {
		b := img.Bounds()
		width := max(1, int(float64(b.Dx())*logo.Scale))
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return models.Image{}, fmt.Errorf("encode logo %s: %w", logo.Path, err)
	}
	return models.Image{
		Cell:            logo.Cell,
		Extension:       ".png",
		Data:            buf.Bytes(),
		LockAspectRatio: true,
	}, nil
}
