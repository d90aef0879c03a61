package annot

import (
	"encoding/xml"
	"io"
	"os"
)

// Vertex is one polygon vertex in image coordinates.
// The annotation's Y attribute is the row, X the column.
type Vertex struct {
	Row float64
	Col float64
}

// Region is one annotated nucleus outline.
type Region struct {
	ID       int
	Area     float64
	Vertices []Vertex
}

// Regions with a declared area below this are discarded.
const minArea = 1.0

// Minimum number of vertices for a region to describe a polygon.
const minVertices = 3

type xmlVertex struct {
	X float64 `xml:"X,attr"`
	Y float64 `xml:"Y,attr"`
}

type xmlRegion struct {
	ID       int         `xml:"Id,attr"`
	Area     float64     `xml:"Area,attr"`
	Vertices []xmlVertex `xml:"Vertices>Vertex"`
}

type xmlDocument struct {
	Regions []xmlRegion `xml:"Annotation>Regions>Region"`
}

// Load reads region annotations from an XML file.
// It returns the surviving regions in document order and the number of
// regions rejected as degenerate (area < 1.0 or fewer than 3 vertices).
func Load(path string) ([]Region, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses region annotations from r. See Load.
func Decode(r io.Reader) ([]Region, int, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, err
	}

	var regions []Region
	rejected := 0
	for _, xr := range doc.Regions {
		if xr.Area < minArea || len(xr.Vertices) < minVertices {
			rejected++
			continue
		}

		verts := make([]Vertex, len(xr.Vertices))
		for i, v := range xr.Vertices {
			verts[i] = Vertex{Row: v.Y, Col: v.X}
		}
		regions = append(regions, Region{
			ID:       xr.ID,
			Area:     xr.Area,
			Vertices: verts,
		})
	}

	return regions, rejected, nil
}
