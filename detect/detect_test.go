package detect

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gocv.io/x/gocv"
)

// synthetic draws dark filled circles on a white BGR canvas.
func synthetic(h, w, radius int, centers []image.Point) gocv.Mat {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), h, w, gocv.MatTypeCV8UC3)
	for _, c := range centers {
		gocv.Circle(&img, c, radius, color.RGBA{A: 255}, -1)
	}
	return img
}

func TestNuclei(t *testing.T) {
	centers := []image.Point{{X: 40, Y: 40}, {X: 140, Y: 60}, {X: 80, Y: 150}}
	img := synthetic(200, 200, 12, centers)
	defer img.Close()

	points := Nuclei(img)
	if len(points) != len(centers) {
		t.Fatalf("Detected %v blobs, want %v", len(points), len(centers))
	}

	for _, c := range centers {
		found := false
		for _, p := range points {
			if math.Abs(p.Col-float64(c.X)) <= 6 && math.Abs(p.Row-float64(c.Y)) <= 6 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("No detection near (%v, %v): %v", c.Y, c.X, points)
		}
	}
}

func TestNucleiEmpty(t *testing.T) {
	img := synthetic(100, 100, 0, nil)
	defer img.Close()

	if points := Nuclei(img); len(points) != 0 {
		t.Errorf("Detected %v blobs on a blank image", len(points))
	}
}

func TestNucleiWithOverlay(t *testing.T) {
	img := synthetic(100, 100, 12, []image.Point{{X: 50, Y: 50}})
	defer img.Close()

	points, overlay := NucleiWithOverlay(img)
	defer overlay.Close()

	if len(points) != 1 {
		t.Fatalf("Detected %v blobs, want 1", len(points))
	}
	// The overlay keeps the padded geometry.
	if overlay.Rows() != 100+2*pad || overlay.Cols() != 100+2*pad {
		t.Errorf("Overlay size %vx%v, want %vx%v", overlay.Rows(), overlay.Cols(), 100+2*pad, 100+2*pad)
	}
}
