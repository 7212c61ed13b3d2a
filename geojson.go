package sweepline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func fromOrb(p orb.Point) Point {
	return Point{p.X(), p.Y()}
}

func appendPolyline(segs []Segment, ps []orb.Point) []Segment {
	for i := 1; i < len(ps); i++ {
		segs = append(segs, Seg(fromOrb(ps[i-1]), fromOrb(ps[i])))
	}
	return segs
}

func appendGeometry(segs []Segment, g orb.Geometry) []Segment {
	switch g := g.(type) {
	case orb.Point:
		segs = append(segs, Seg(fromOrb(g), fromOrb(g)))
	case orb.MultiPoint:
		for _, p := range g {
			segs = append(segs, Seg(fromOrb(p), fromOrb(p)))
		}
	case orb.LineString:
		segs = appendPolyline(segs, g)
	case orb.MultiLineString:
		for _, ls := range g {
			segs = appendPolyline(segs, ls)
		}
	case orb.Ring:
		segs = appendPolyline(segs, g)
	case orb.Polygon:
		for _, r := range g {
			segs = appendPolyline(segs, r)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				segs = appendPolyline(segs, r)
			}
		}
	case orb.Collection:
		for _, gi := range g {
			segs = appendGeometry(segs, gi)
		}
	case orb.Bound:
		x0, y0, x1, y1 := g.Min.X(), g.Min.Y(), g.Max.X(), g.Max.Y()
		segs = append(segs,
			Segment{x0, y0, x1, y0},
			Segment{x1, y0, x1, y1},
			Segment{x1, y1, x0, y1},
			Segment{x0, y1, x0, y0},
		)
	}
	return segs
}

// SegmentsFromGeometry returns the line segments of a geometry in order. Line strings and rings yield one segment per pair of consecutive points, a ring is expected to repeat its first point at the end. Points yield zero-length segments and a bound yields its four edges.
func SegmentsFromGeometry(g orb.Geometry) []Segment {
	return appendGeometry([]Segment{}, g)
}

// ReadGeoJSON reads a GeoJSON feature collection, feature or geometry and returns the line segments of all geometries, see SegmentsFromGeometry.
func ReadGeoJSON(r io.Reader) ([]Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var object struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, fmt.Errorf("bad GeoJSON: %w", err)
	}

	segs := []Segment{}
	switch object.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("bad GeoJSON: %w", err)
		}
		for _, f := range fc.Features {
			segs = appendGeometry(segs, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("bad GeoJSON: %w", err)
		}
		segs = appendGeometry(segs, f.Geometry)
	case "":
		return nil, fmt.Errorf("bad GeoJSON: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("bad GeoJSON: %w", err)
		}
		segs = appendGeometry(segs, g.Geometry())
	}
	return segs, nil
}
