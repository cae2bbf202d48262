// Command krinkle renders Modulo Krinkle tilings to PNG or SVG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/krinkle"
)

func main() {
	var (
		m       = flag.Int("m", 3, "step")
		k       = flag.Int("k", 7, "modulus")
		t       = flag.Int("t", 2, "period coefficient: n = k*t, or 2*(t*k-m) with -offset")
		offset  = flag.Bool("offset", false, "offset tiling (half disc completed by point reflection)")
		rows    = flag.Int("rows", 6, "wedge depth in prototile rows")
		colors  = flag.Int("colors", 4, "palette size")
		scheme  = flag.String("scheme", "rainbow", "palette scheme: rainbow, warm, pastel, gray")
		size    = flag.Int("size", 1024, "output image size in pixels (PNG only)")
		output  = flag.String("output", "krinkle.png", "output file (.png or .svg)")
		verbose = flag.Bool("v", false, "log generation details to stderr")
	)
	flag.Parse()

	if *verbose {
		krinkle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sch, err := krinkle.ParseScheme(*scheme)
	if err != nil {
		log.Fatalf("Bad scheme: %v", err)
	}

	n := krinkle.DirectionCount(*m, *k, *t, *offset)
	res, err := krinkle.Tiling(*m, *k, n, *rows, *offset,
		krinkle.WithPalette(krinkle.Palette(sch, *colors)))
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	if len(res.SkippedWedges) > 0 {
		log.Printf("warning: wedges %v could not be attached; the tiling has gaps", res.SkippedWedges)
	}

	switch filepath.Ext(*output) {
	case ".svg":
		if err := writeSVG(*output, res.Polygons); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	default:
		if err := writePNG(*output, res.Polygons, *size); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	log.Printf("Wrote %s (%d tiles, n=%d)\n", *output, len(res.Polygons), n)
}

func writeSVG(path string, polys []krinkle.Polygon) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := krinkle.WriteSVG(f, polys); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, polys []krinkle.Polygon, size int) error {
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.White)

	// Fit the tiling into the image with a small margin.
	min, max := krinkle.Bounds(polys)
	w, h := max.X-min.X, max.Y-min.Y
	if w == 0 || h == 0 {
		return dc.SavePNG(path)
	}
	scale := 0.95 * float64(size) / w
	if s := 0.95 * float64(size) / h; s < scale {
		scale = s
	}
	dc.Translate(float64(size)/2, float64(size)/2)
	dc.Scale(scale, scale)
	dc.Translate(-(min.X+max.X)/2, -(min.Y+max.Y)/2)

	krinkle.Draw(dc, polys)
	return dc.SavePNG(path)
}
