package main

import (
	"log"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cellseg/monuseg/annot"
)

// runEDA plots a histogram of annotated nuclei counts per training image.
func runEDA() {
	annotDir := filepath.Join(DataPath, "MoNuSegTrainData", "Annotations")
	xmlFiles, err := filepath.Glob(filepath.Join(annotDir, "*.xml"))
	if err != nil {
		log.Fatal(err)
	}
	if len(xmlFiles) == 0 {
		log.Fatalf("no annotation files found in %v", annotDir)
	}

	v := make(plotter.Values, 0, len(xmlFiles))
	for _, xmlPath := range xmlFiles {
		regions, _, err := annot.Load(xmlPath)
		if err != nil {
			log.Fatal(err)
		}
		v = append(v, float64(len(regions)))
	}

	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}

	h, err := plotter.NewHist(v, 10)
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = "Nuclei per image"
	p.Add(h)

	out := filepath.Join(TargetPath, "nuclei-histo.png")
	if err := p.Save(4*vg.Inch, 4*vg.Inch, out); err != nil {
		log.Fatal(err)
	}
}
