package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cellseg/monuseg/dataset"
)

func dataConfig() dataset.Config {
	return dataset.Config{
		TrainImageDir: filepath.Join(DataPath, "MoNuSegTrainData", "images"),
		TrainMaskDir:  filepath.Join(DataPath, "MoNuSegTrainData", "masks"),
		TestImageDir:  filepath.Join(DataPath, "MoNuSegTestData", "images"),
		TestMaskDir:   filepath.Join(DataPath, "MoNuSegTestData", "masks"),
		Workers:       Workers,
	}
}

func loadManifest() dataset.Manifest {
	m, err := dataset.LoadManifest(SplitsFile)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

func runSubset() {
	target := filepath.Join(TargetPath, "MoNuSegByCancer")
	if err := dataset.Subset(dataConfig(), loadManifest(), target); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Subset by cancer type: completed (%v).\n", target)
}

func runPatchify() {
	target := filepath.Join(TargetPath, fmt.Sprintf("MoNuSegByCancer_%dx%d", ImSize, ImSize))
	if err := dataset.Patchify(dataConfig(), loadManifest(), target, ImSize, Reduction); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Patchify by cancer type: completed (%v).\n", target)
}

func runIntraImage() {
	m := loadManifest()
	cfg := dataConfig()

	for _, percent := range parsePercentages(Percentages) {
		target := filepath.Join(TargetPath,
			fmt.Sprintf("MoNuSegByCancer_intraimage%dpct_%dx%d", percent, ImSize, ImSize))
		if err := dataset.IntraImage(cfg, m, target, ImSize, percent); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Intra-image split at %d%%: completed (%v).\n", percent, target)
	}
}

func parsePercentages(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Fatalf("invalid percentage %q: %v", part, err)
		}
		if p < 1 || p > 100 {
			log.Fatalf("percentage %d out of range", p)
		}
		out = append(out, p)
	}
	return out
}
