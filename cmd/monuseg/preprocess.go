package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cellseg/monuseg/annot"
	"github.com/cellseg/monuseg/imgio"
	"github.com/cellseg/monuseg/mask"
)

// runPreprocess parses the XML annotations, rasterizes them into binary
// masks and writes image/mask PNG pairs next to the source data. Source
// images are 1000x1000 RGB tif files.
func runPreprocess() {
	start := time.Now()

	for _, subset := range []string{"test", "train"} {
		var imageDir, annotDir, outDir string
		if subset == "train" {
			imageDir = filepath.Join(DataPath, "MoNuSegTrainData", "Tissue Images")
			annotDir = filepath.Join(DataPath, "MoNuSegTrainData", "Annotations")
			outDir = filepath.Join(DataPath, "MoNuSegTrainData")
		} else {
			imageDir = filepath.Join(DataPath, "MoNuSegTestData")
			annotDir = imageDir
			outDir = imageDir
		}

		if err := preprocessSubset(imageDir, annotDir, outDir); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Preprocessing: completed.")
	fmt.Printf("Duration: %.2f (min)\n", time.Since(start).Minutes())
}

func preprocessSubset(imageDir, annotDir, outDir string) error {
	xmlFiles, err := filepath.Glob(filepath.Join(annotDir, "*.xml"))
	if err != nil {
		return err
	}

	for _, xmlPath := range xmlFiles {
		id := strings.TrimSuffix(filepath.Base(xmlPath), filepath.Ext(xmlPath))

		imgPath := filepath.Join(imageDir, id+".tif")
		if _, err := os.Stat(imgPath); os.IsNotExist(err) {
			log.Printf("Image file %v not found.", imgPath)
			continue
		}

		img, err := imgio.ReadImage(imgPath)
		if err != nil {
			return fmt.Errorf("reading %v: %v", imgPath, err)
		}
		rgba := imgio.ToNRGBA(img)

		regions, rejected, err := annot.Load(xmlPath)
		if err != nil {
			return fmt.Errorf("reading %v: %v", xmlPath, err)
		}
		fmt.Printf("%v: %d annotated cells, %d invalid\n", id, len(regions), rejected)

		b := rgba.Bounds()
		m, _ := mask.FromRegions(regions, b.Dy(), b.Dx())
		if err := m.Validate(); err != nil {
			// A non-binary mask must never be persisted.
			log.Fatalf("mask for %v: %v", id, err)
		}

		if err := imgio.WritePNG(filepath.Join(outDir, "images", id+".png"), rgba); err != nil {
			return err
		}
		if err := imgio.WritePNG(filepath.Join(outDir, "masks", id+".png"), m.Gray()); err != nil {
			return err
		}
	}

	return nil
}
