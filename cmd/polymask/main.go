package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ivlev/polymask/internal/config"
	"github.com/ivlev/polymask/internal/engine"
	"github.com/ivlev/polymask/internal/palette"
)

var buildVersion = "dev"

func main() {
	colormapPtr := flag.String("colormap", "", "YAML colormap (default: built-in road scene classes)")
	printColormapPtr := flag.Bool("print-colormap", false, "Print the active colormap as YAML and exit")
	strictPtr := flag.Bool("strict", false, "Fail on polygons with fewer than 3 points")
	statsPtr := flag.Bool("stats", false, "Print a run report")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <annotation.json> <image> <masks_dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	table := palette.Default()
	if *colormapPtr != "" {
		t, err := palette.Load(*colormapPtr)
		if err != nil {
			log.Fatalf("[-] Error loading colormap: %v", err)
		}
		table = t
		fmt.Printf("[*] Colormap: %s (%d classes)\n", *colormapPtr, table.Len())
	}

	if *printColormapPtr {
		if err := table.Encode(os.Stdout); err != nil {
			log.Fatalf("[-] Error writing colormap: %v", err)
		}
		return
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := &config.Config{
		AnnotationPath: flag.Arg(0),
		ImagePath:      flag.Arg(1),
		OutputDir:      flag.Arg(2),
		ColormapPath:   *colormapPtr,
		Strict:         *strictPtr,
		ShowStats:      *statsPtr,
		BuildVersion:   buildVersion,
	}

	project := engine.NewMaskProject(cfg, table)
	outPath, err := project.Run()
	if err != nil {
		log.Fatalf("[-] Conversion failed: %v", err)
	}

	fmt.Println(successLine(outPath))
}

func successLine(outPath string) string {
	return "[+++] Success! Mask saved: " + outPath
}
