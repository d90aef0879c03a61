package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
)

// flag variables
var (
	DataPath    string
	TargetPath  string
	SplitsFile  string
	task        string
	CancerType  string
	Percentages string
	Ratio       string
)

// hyperparameters
var (
	ImSize    int   // tile edge length
	Reduction int   // image resolution reduction times
	BatchSize int   // batch size
	Seed      int64 // loader split seed
	Workers   int   // images processed in parallel
)

func init() {
	flag.StringVar(&DataPath, "input", "./input", "specify input data directory")
	flag.StringVar(&TargetPath, "output", "./output", "specify output data directory")
	flag.StringVar(&SplitsFile, "splits", "./data/monuseg_splits.csv", "specify cancer-type split manifest CSV file")
	flag.StringVar(&task, "task", "preprocess", "specify task to run")
	flag.StringVar(&CancerType, "cancer", "", "restrict detect task to one cancer type")
	flag.IntVar(&ImSize, "imsize", 200, "specify tile image size")
	flag.IntVar(&Reduction, "reduction", 1, "specify image resolution reduction times")
	flag.StringVar(&Percentages, "percent", "5,20,50", "specify evidence percentages for the intra-image split")
	flag.IntVar(&BatchSize, "batch", 16, "specify batch size")
	flag.StringVar(&Ratio, "ratio", "8:1:1", "specify train:val:test split ratio")
	flag.Int64Var(&Seed, "seed", 1, "specify random seed for the loader split")
	flag.IntVar(&Workers, "workers", 1, "specify number of images processed in parallel")
}

func main() {
	flag.Parse()

	DataPath = absPath(DataPath)
	TargetPath = absPath(TargetPath)

	switch task {
	case "preprocess":
		runPreprocess()
	case "subset":
		runSubset()
	case "patchify":
		runPatchify()
	case "intraimage":
		runIntraImage()
	case "detect":
		runDetect()
	case "eda":
		runEDA()
	case "loader":
		runCheckDataLoader()
	default:
		err := fmt.Errorf("Unknown 'task' name. Please specify valid 'task' flag to run.\n")
		panic(err)
	}
}

// helper to get absolute file path
func absPath(p string) string {
	fullpath, err := filepath.Abs(p)
	if err != nil {
		log.Fatal(err)
	}
	return fullpath
}
