// Package mesh loads triangle soups from Wavefront OBJ files for the
// diagnostic CLI. Parsing is strict: malformed coordinates are reported,
// never zeroed or skipped.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/splatwalk/navbake/geometry"
)

// LoadOBJ reads an OBJ file into an indexed triangle soup.
func LoadOBJ(path string) (*geometry.NavGeometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseOBJ parses vertex and face rows. Faces with more than three
// corners are fan-triangulated; negative indices are resolved relative to
// the vertices seen so far, per the format. Faces referencing unknown
// vertices are dropped, matching the usual tolerance for polygon soups.
func ParseOBJ(r io.Reader) (*geometry.NavGeometry, error) {
	g := &geometry.NavGeometry{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		fields := strings.Fields(row)
		switch fields[0] {
		case "v":
			if err := parseVertex(g, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "f":
			if err := parseFace(g, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseVertex(g *geometry.NavGeometry, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	for _, s := range fields[:3] {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("bad coordinate %q: %w", s, err)
		}
		g.Positions = append(g.Positions, float32(v))
	}
	return nil
}

func parseFace(g *geometry.NavGeometry, fields []string) error {
	vertCount := g.VertCount()
	corners := make([]int, 0, len(fields))
	for _, s := range fields {
		// Only the position index matters; texture/normal refs after the
		// first slash are ignored.
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[:i]
		}
		vi, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("bad face index %q: %w", s, err)
		}
		if vi < 0 {
			vi += vertCount
		} else {
			vi--
		}
		corners = append(corners, vi)
	}
	for i := 2; i < len(corners); i++ {
		a, b, c := corners[0], corners[i-1], corners[i]
		if a < 0 || a >= vertCount || b < 0 || b >= vertCount || c < 0 || c >= vertCount {
			continue
		}
		g.Indices = append(g.Indices, uint32(a), uint32(b), uint32(c))
	}
	return nil
}
