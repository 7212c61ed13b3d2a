package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
)

type Sweep struct {
	Unique     bool   `short:"u" desc:"Remove duplicate pairs and sort by segment index"`
	Exhaustive bool   `short:"e" desc:"Test all pairs instead of sweeping"`
	Trace      bool   `short:"t" desc:"Print every sweep event and the sweep status to stderr"`
	GeoJSON    bool   `short:"g" desc:"Input is GeoJSON, default for .geojson and .json files"`
	Input      string `index:"0" desc:"Input file with SVG path data or GeoJSON, - for stdin"`
}

func main() {
	root := argp.NewCmd(&Sweep{}, "Line segment intersection finder by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Sweep) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f

		ext := strings.ToLower(filepath.Ext(cmd.Input))
		if ext == ".geojson" || ext == ".json" {
			cmd.GeoJSON = true
		}
	}

	segs, err := readSegments(r, cmd.GeoJSON)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd.Input, err)
	}

	var zs sweepline.Pairs
	if cmd.Exhaustive {
		if err := sweepline.Validate(segs); err != nil {
			return err
		}
		zs = sweepline.BruteForce(segs)
	} else {
		sweeper := sweepline.Sweeper{}
		if cmd.Trace {
			sweeper.Trace = os.Stderr
		}
		if zs, err = sweeper.Intersections(segs); err != nil {
			return err
		}
	}
	if cmd.Unique {
		zs = zs.Unique()
	}

	fmt.Printf("Intersections found: %d\n", len(zs))
	for _, z := range zs {
		fmt.Printf("%d %d %v\n", z.I, z.J, z)
	}
	return nil
}

func readSegments(r io.Reader, geoJSON bool) ([]sweepline.Segment, error) {
	if geoJSON {
		return sweepline.ReadGeoJSON(r)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return sweepline.ParseSegments(string(bytes.TrimSpace(b)))
}
