package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sperm-analyzer/config"
	"sperm-analyzer/internal/container"
	"sperm-analyzer/internal/infrastructure/imageio"
)

type contourJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Area   int `json:"area"`
	Points int `json:"points"`
}

type resultJSON struct {
	Input      string        `json:"input"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Threshold  int           `json:"threshold"`
	Count      int           `json:"count"`
	MaxCount   int           `json:"max_count"`
	MeanArea   float64       `json:"mean_area"`
	StdDevArea float64       `json:"stddev_area"`
	Contours   []contourJSON `json:"contours"`
	Output     string        `json:"output,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var in, out string
	var quality int
	var asJSON bool

	flag.StringVar(&in, "in", "", "input image path (png/jpg/gif/bmp/webp)")
	flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "binarization threshold (0-255), darker pixels are objects")
	flag.IntVar(&cfg.MinArea, "min-area", cfg.MinArea, "drop objects smaller than this many pixels, 0=off")
	flag.StringVar(&cfg.LumaOrder, "luma-order", cfg.LumaOrder, "channel order for grayscale: auto|rgb|bgr")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "vision backend: native|gocv")
	flag.StringVar(&out, "out", "", "write annotated image to this path (format from extension)")
	flag.IntVar(&quality, "quality", imageio.DefaultQuality, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&asJSON, "json", false, "print result as JSON")
	flag.Parse()

	if in == "" {
		log.Fatalf("usage: %s -in image.png [-threshold 120] [-min-area 0] [-luma-order auto|rgb|bgr] [-backend native|gocv] [-out annotated.png] [-json]", filepath.Base(os.Args[0]))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	appContainer, err := container.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	img, err := imageio.Open(in)
	if err != nil {
		log.Fatal(err)
	}

	res, err := appContainer.AnalysisService.Analyze(context.Background(), img, cfg.Threshold)
	if err != nil {
		log.Fatal(err)
	}

	if out != "" {
		if err := imageio.Save(out, res.Result.Annotated, quality); err != nil {
			log.Fatal(err)
		}
	}

	if !asJSON {
		fmt.Println(res.Description.Text)
		if out != "" {
			fmt.Printf("Annotated image: %s\n", out)
		}
		return
	}

	report := resultJSON{
		Input:      in,
		Width:      img.Width,
		Height:     img.Height,
		Threshold:  cfg.Threshold,
		Count:      res.Summary.Count,
		MaxCount:   res.Summary.MaxCount,
		MeanArea:   res.Summary.MeanArea,
		StdDevArea: res.Summary.StdDevArea,
		Contours:   make([]contourJSON, 0, len(res.Result.Contours)),
		Output:     out,
	}
	for _, c := range res.Result.Contours {
		b := c.Bounds()
		report.Contours = append(report.Contours, contourJSON{
			X: b.X, Y: b.Y, Width: b.Width, Height: b.Height,
			Area: c.Area, Points: len(c.Points),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal(err)
	}
}
