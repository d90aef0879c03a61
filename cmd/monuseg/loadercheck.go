package main

import (
	"fmt"
	"log"
	"path/filepath"

	ts "github.com/sugarme/gotch/tensor"

	"github.com/cellseg/monuseg/loader"
)

// runCheckDataLoader wires the tile trees under the input directory into
// batched train/val/test loaders and iterates the training loader once.
func runCheckDataLoader() {
	ratios, err := loader.ParseRatios(Ratio)
	if err != nil {
		log.Fatal(err)
	}

	ld, err := loader.Prepare(loader.Config{
		ImageDir:         filepath.Join(DataPath, "images"),
		MaskDir:          filepath.Join(DataPath, "masks"),
		Ratios:           ratios,
		Seed:             Seed,
		BatchSize:        BatchSize,
		MinBatchPerEpoch: 5,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Image channels: %v\n", ld.NumImageChannel)

	count := 0
	for ld.Train.HasNext() {
		s, err := ld.Train.Next()
		if err != nil {
			log.Fatal(err)
		}

		count++
		var (
			img, mask []ts.Tensor
		)

		for _, i := range s.([]loader.ImageMask) {
			img = append(img, i.Image)
			mask = append(mask, i.Mask)
		}

		imgTs := ts.MustStack(img, 0)
		maskTs := ts.MustStack(mask, 0)

		fmt.Printf("Loaded %v: %v, image shape: %v, mask shape: %v\n", count, len(s.([]loader.ImageMask)), imgTs.MustSize(), maskTs.MustSize())

		imgTs.MustDrop()
		maskTs.MustDrop()
		for _, x := range img {
			x.MustDrop()
		}
		for _, x := range mask {
			x.MustDrop()
		}
	}
}
