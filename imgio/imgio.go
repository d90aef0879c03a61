package imgio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/chai2010/tiff"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// ReadImage reads an image from file, selecting the codec by extension.
func ReadImage(filename string) (image.Image, error) {
	ext := filepath.Ext(filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".png", ".PNG":
		return png.Decode(f)
	case ".jpg", ".jpeg", ".JPG", ".JPEG":
		return jpeg.Decode(f)
	case ".tiff", ".tif", ".TIFF", ".TIF":
		return tiff.Decode(f)
	default:
		err = fmt.Errorf("Unsupported image format: %v\n", ext)
		return nil, err
	}
}

// ReadGray reads an image and converts it to grayscale.
func ReadGray(filename string) (*image.Gray, error) {
	img, err := ReadImage(filename)
	if err != nil {
		return nil, err
	}
	return ToGray(img), nil
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// ToNRGBA copies img into an NRGBA image anchored at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}

// ToGray copies img into a grayscale image anchored at the origin.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}

// Reduce downscales img by an integer factor with Lanczos resampling.
// A factor of 1 or less returns img unchanged.
func Reduce(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	w := uint(img.Bounds().Dx() / factor)
	h := uint(img.Bounds().Dy() / factor)
	return resize.Resize(w, h, img, resize.Lanczos3)
}
