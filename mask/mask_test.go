package mask_test

import (
	"testing"

	"github.com/cellseg/monuseg/annot"
	"github.com/cellseg/monuseg/mask"
)

func square(id int, top, left, size float64) annot.Region {
	return annot.Region{
		ID:   id,
		Area: size * size,
		Vertices: []annot.Vertex{
			{Row: top, Col: left},
			{Row: top, Col: left + size},
			{Row: top + size, Col: left + size},
			{Row: top + size, Col: left},
		},
	}
}

func TestFromRegionsBinary(t *testing.T) {
	regions := []annot.Region{square(1, 10, 10, 30)}
	m, centroids := mask.FromRegions(regions, 50, 50)

	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(centroids) != 1 {
		t.Fatalf("got %d centroids, want 1", len(centroids))
	}

	// Pixels strictly inside the polygon must be set.
	for _, p := range [][2]int{{15, 15}, {25, 25}, {35, 35}} {
		if m.At(p[0], p[1]) != 1 {
			t.Errorf("interior pixel (%d, %d) = %d, want 1", p[0], p[1], m.At(p[0], p[1]))
		}
	}
	// Pixels well outside must stay clear.
	for _, p := range [][2]int{{0, 0}, {5, 25}, {45, 45}} {
		if m.At(p[0], p[1]) != 0 {
			t.Errorf("exterior pixel (%d, %d) = %d, want 0", p[0], p[1], m.At(p[0], p[1]))
		}
	}

	c := centroids[0]
	if c.Row < 24 || c.Row > 25 || c.Col < 24 || c.Col > 25 {
		t.Errorf("centroid = (%d, %d), want about (25, 25)", c.Row, c.Col)
	}
}

func TestFromRegionsUnion(t *testing.T) {
	regions := []annot.Region{
		square(1, 2, 2, 10),
		square(2, 30, 30, 10),
		// Overlaps the first square; the union must stay binary.
		square(3, 6, 6, 10),
	}
	m, centroids := mask.FromRegions(regions, 50, 50)

	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(centroids) != 3 {
		t.Fatalf("got %d centroids, want 3", len(centroids))
	}
	if m.At(7, 7) != 1 {
		t.Error("overlap pixel (7, 7) not set")
	}
	if m.At(35, 35) != 1 {
		t.Error("second square pixel (35, 35) not set")
	}
	if m.At(25, 25) != 0 {
		t.Error("gap pixel (25, 25) should stay clear")
	}
}

func TestValidate(t *testing.T) {
	m := mask.New(4, 4)
	if err := m.Validate(); err != nil {
		t.Errorf("zero mask should validate, got %v", err)
	}
	m.Pix[5] = 2
	if err := m.Validate(); err == nil {
		t.Error("expected an error for mask value 2")
	}
}

func TestGrayScaling(t *testing.T) {
	m := mask.New(2, 2)
	m.Pix[0] = 1
	g := m.Gray()
	if g.Pix[0] != 255 {
		t.Errorf("set pixel = %d, want 255", g.Pix[0])
	}
	if g.Pix[1] != 0 {
		t.Errorf("clear pixel = %d, want 0", g.Pix[1])
	}
}
