// Package geo samples ground elevations from digital elevation models and
// reports the coordinate reference system of geospatial files.
package geo

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ElevationSampler returns the ground elevation (m) at a WGS 84 position.
type ElevationSampler interface {
	Elevation(lat, lon float64) (float64, error)
	Name() string
}

// Source selects an ElevationSampler implementation.
type Source string

const (
	SourceGrid      Source = "grid"
	SourceSynthetic Source = "synthetic"
)

// NewSampler builds the sampler for src. The choice is explicit: a grid that
// cannot be read is an error, never a silent switch to synthetic data.
func NewSampler(src Source, path string) (ElevationSampler, error) {
	switch src {
	case SourceGrid:
		g, err := LoadGrid(path)
		if err != nil {
			return nil, err
		}
		return g, nil
	case SourceSynthetic:
		return SyntheticSampler{}, nil
	default:
		return nil, fmt.Errorf("unknown elevation source %q (use %q or %q)", src, SourceGrid, SourceSynthetic)
	}
}

// SyntheticSampler produces a deterministic terrain for demonstrations.
type SyntheticSampler struct{}

func (SyntheticSampler) Name() string { return "synthetic terrain" }

func (SyntheticSampler) Elevation(lat, lon float64) (float64, error) {
	const base = 100.0
	v := math.Mod(lat+lon, 10)
	if v < 0 {
		v += 10
	}
	return math.Round((base+v)*100) / 100, nil
}

// Grid is an ESRI ASCII raster (.asc) held in memory. Cell (0,0) is the
// north-west corner.
type Grid struct {
	Path     string
	NCols    int
	NRows    int
	XLL      float64 // x of the lower-left corner
	YLL      float64 // y of the lower-left corner
	CellSize float64
	NoData   float64
	Values   []float64 // row-major, north to south
}

func (g *Grid) Name() string { return g.Path }

// Elevation returns the value of the cell containing (lon, lat).
func (g *Grid) Elevation(lat, lon float64) (float64, error) {
	col := int(math.Floor((lon - g.XLL) / g.CellSize))
	rowFromBottom := int(math.Floor((lat - g.YLL) / g.CellSize))
	if col < 0 || col >= g.NCols || rowFromBottom < 0 || rowFromBottom >= g.NRows {
		return 0, fmt.Errorf("position (%g, %g) is outside the grid extent", lat, lon)
	}
	row := g.NRows - 1 - rowFromBottom
	v := g.Values[row*g.NCols+col]
	if v == g.NoData {
		return 0, fmt.Errorf("no data at (%g, %g)", lat, lon)
	}
	return v, nil
}

// LoadGrid reads an ESRI ASCII grid file.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	g := &Grid{Path: path, NoData: -9999}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var centered bool
	headers := 0
	for headers < 6 && sc.Scan() {
		key := strings.ToLower(sc.Text())
		if v, err := strconv.ParseFloat(key, 64); err == nil {
			// first data value, header had only five entries
			g.Values = append(g.Values, v)
			break
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("grid header: missing value for %s", key)
		}
		val, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("grid header %s: %w", key, err)
		}
		switch key {
		case "ncols":
			g.NCols = int(val)
		case "nrows":
			g.NRows = int(val)
		case "xllcorner":
			g.XLL = val
		case "xllcenter":
			g.XLL, centered = val, true
		case "yllcorner":
			g.YLL = val
		case "yllcenter":
			g.YLL, centered = val, true
		case "cellsize":
			g.CellSize = val
		case "nodata_value":
			g.NoData = val
		default:
			return nil, fmt.Errorf("grid header: unknown key %q", key)
		}
		headers++
	}
	if g.NCols <= 0 || g.NRows <= 0 || g.CellSize <= 0 {
		return nil, fmt.Errorf("grid header: ncols, nrows and cellsize must be positive")
	}
	if centered {
		g.XLL -= g.CellSize / 2
		g.YLL -= g.CellSize / 2
	}

	n := g.NCols * g.NRows
	for len(g.Values) < n && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("grid value %d: %w", len(g.Values)+1, err)
		}
		g.Values = append(g.Values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(g.Values) != n {
		return nil, fmt.Errorf("grid: expected %d values, read %d", n, len(g.Values))
	}
	return g, nil
}
