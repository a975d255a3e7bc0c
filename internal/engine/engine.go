package engine

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ivlev/polymask/internal/annotation"
	"github.com/ivlev/polymask/internal/composite"
	"github.com/ivlev/polymask/internal/config"
	"github.com/ivlev/polymask/internal/output"
	"github.com/ivlev/polymask/internal/palette"
	"github.com/ivlev/polymask/internal/source"
	"github.com/ivlev/polymask/internal/system"
)

type MaskProject struct {
	Config *config.Config
	Table  palette.Table

	// Summary is filled by Run.
	Summary composite.Summary
}

func NewMaskProject(cfg *config.Config, table palette.Table) *MaskProject {
	return &MaskProject{
		Config: cfg,
		Table:  table,
	}
}

// Run converts the annotation file into a color mask and returns the path
// of the written PNG. Any failure stops the run.
func (p *MaskProject) Run() (string, error) {
	startTime := time.Now()

	doc, err := annotation.Load(p.Config.AnnotationPath)
	if err != nil {
		return "", err
	}
	loadEnd := time.Now()

	img, err := source.Open(p.Config.ImagePath)
	if err != nil {
		return "", err
	}
	if !img.Matches(doc.ImgWidth, doc.ImgHeight) {
		log.Printf("[!] Image %s is %dx%d, annotation says %dx%d; using the annotation size",
			p.Config.ImagePath, img.Width, img.Height, doc.ImgWidth, doc.ImgHeight)
	}

	fmt.Printf("[*] Annotation: %s | Objects: %d | Size: %dx%d\n",
		p.Config.AnnotationPath, len(doc.Objects), doc.ImgWidth, doc.ImgHeight)

	composeStart := time.Now()
	mask, sum, err := composite.Compose(doc, p.Table, composite.Options{Strict: p.Config.Strict})
	p.Summary = sum
	if err != nil {
		return "", err
	}
	composeEnd := time.Now()

	outPath := output.OutputPath(img.BaseName(), p.Config.OutputDir)
	if err := output.WritePNG(mask, outPath); err != nil {
		return "", err
	}

	if p.Config.ShowStats {
		p.writeReport(os.Stdout, time.Since(startTime), loadEnd.Sub(startTime), composeEnd.Sub(composeStart))
	}

	return outPath, nil
}

func (p *MaskProject) writeReport(w io.Writer, total, load, compose time.Duration) {
	s := p.Summary
	colormap := p.Config.ColormapPath
	if colormap == "" {
		colormap = "built-in"
	}
	fb := p.Table.Fallback()
	report := fmt.Sprintf(
		"--- [RUN REPORT] ---\n"+
			"Build: %s\n"+
			"Colormap: %s (%d classes, default %d,%d,%d)\n"+
			"Objects: %d (painted %d, empty label %d, degenerate %d, default color %d)\n"+
			"Pixels written: %d\n"+
			"Load: %.3fs\n"+
			"Rasterize+Composite: %.3fs\n"+
			"Total Time: %.3fs\n",
		p.Config.BuildVersion, colormap, p.Table.Len(), fb.R, fb.G, fb.B, s.Objects, s.Painted, s.Skipped, s.Degenerate, s.Fallback,
		s.Pixels, load.Seconds(), compose.Seconds(), total.Seconds(),
	)

	usage, err := system.CurrentUsage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[!] Could not read process usage: %v\n", err)
	} else {
		report += fmt.Sprintf("CPU: %.1f%% | Memory: RSS %.1f MiB | Heap %.1f MiB | Host RAM %.0f MiB\n",
			usage.CPUPercent, system.MiB(usage.RSS), system.MiB(usage.HeapAlloc), system.MiB(usage.TotalRAM))
	}
	report += "--------------------\n"

	fmt.Fprint(w, report)
}
