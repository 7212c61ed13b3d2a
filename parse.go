package sweepline

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseSegments parses SVG path data into line segments. Every drawn line is a segment, ie. each L, H and V command, each coordinate pair following the first one of an M command, and each Z command that does not end at the start of its subpath. Curves and arcs return an error.
func ParseSegments(s string) ([]Segment, error) {
	path := []byte(s)
	segs := []Segment{}

	var prevCmd byte
	var cur, start Point
	lineTo := func(p Point) {
		segs = append(segs, Seg(cur, p))
		cur = p
	}

	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd, explicit := prevCmd, false
		if c := path[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd, explicit = path[i], true
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: expected command at offset %d", i)
		}

		offset := i
		if explicit {
			offset--
		}
		nums := func(n int) ([]float64, error) {
			vals := make([]float64, n)
			for k := range vals {
				f, m := parseNum(path[i:])
				if m == 0 {
					return nil, fmt.Errorf("bad path: expected number for %q at offset %d", cmd, i)
				}
				vals[k] = f
				i += m
			}
			return vals, nil
		}

		switch cmd {
		case 'M', 'm':
			vals, err := nums(2)
			if err != nil {
				return nil, err
			}
			p := Point{vals[0], vals[1]}
			if cmd == 'm' {
				p = Point{cur.X + p.X, cur.Y + p.Y}
			}
			if !explicit {
				// implicit LineTo after MoveTo
				lineTo(p)
			} else {
				cur, start = p, p
			}
		case 'L', 'l':
			vals, err := nums(2)
			if err != nil {
				return nil, err
			}
			p := Point{vals[0], vals[1]}
			if cmd == 'l' {
				p = Point{cur.X + p.X, cur.Y + p.Y}
			}
			lineTo(p)
		case 'H', 'h':
			vals, err := nums(1)
			if err != nil {
				return nil, err
			}
			x := vals[0]
			if cmd == 'h' {
				x += cur.X
			}
			lineTo(Point{x, cur.Y})
		case 'V', 'v':
			vals, err := nums(1)
			if err != nil {
				return nil, err
			}
			y := vals[0]
			if cmd == 'v' {
				y += cur.Y
			}
			lineTo(Point{cur.X, y})
		case 'Z', 'z':
			if cur != start {
				lineTo(start)
			}
			cur = start
		case 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
			return nil, fmt.Errorf("bad path: unsupported curve command %q at offset %d", cmd, offset)
		default:
			return nil, fmt.Errorf("bad path: unknown command %q at offset %d", cmd, offset)
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return segs, nil
}

// MustParseSegments parses SVG path data into line segments and panics on error.
func MustParseSegments(s string) []Segment {
	segs, err := ParseSegments(s)
	if err != nil {
		panic(err)
	}
	return segs
}
