package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vector3d-calc/internal/config"
	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/vecinput"
)

func main() {
	var vectors vecinput.List
	flag.Var(&vectors, "v", "Vector x,y,z (repeatable)")
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("o", "scene.webp", "Output file; the extension picks the format unless -format is set")
	format := flag.String("format", "", "Output format: webp, tga or png")
	size := flag.Int("size", 0, "Image width and height (default: 512)")
	persp := flag.Bool("persp", false, "Perspective projection")
	fov := flag.Float64("fov", 50, "Perspective field of view in degrees")
	az := flag.Float64("az", 45, "Camera azimuth in degrees")
	el := flag.Float64("el", 35.26, "Camera elevation in degrees")
	noGrid := flag.Bool("nogrid", false, "Hide the ground grid")
	noLabels := flag.Bool("nolabels", false, "Hide axis and vector labels")
	flag.Parse()

	cfg, err := config.LoadOptional(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *format == "" {
		*format = strings.TrimPrefix(filepath.Ext(*output), ".")
	}
	cfg.Resolve(config.Flags{RenderSize: *size, ImageFormat: *format})

	f, err := imageio.ParseFormat(cfg.ImageFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := raster.Options{
		Width:       cfg.RenderSize,
		Height:      cfg.RenderSize,
		Supersample: cfg.Supersample,
		Azimuth:     *az,
		Elevation:   *el,
		Perspective: *persp || cfg.Perspective,
		FOV:         *fov,
		NoGrid:      *noGrid,
		NoLabels:    *noLabels,

		ExplicitView: true,
	}
	named := vecinput.FromVecs(vectors)
	for _, n := range named {
		fmt.Printf("%s = %s  |%s| = %.3f\n", n.Name, n.Vec, n.Name, n.Vec.Len())
	}

	start := time.Now()
	img := raster.RenderScene(raster.ArrowsFromNamed(named), opts)

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := imageio.Encode(out, img, f); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d vectors (%s) to %s in %.0fms\n", len(named), opts.Describe(), *output, float64(time.Since(start).Microseconds())/1000)
}
