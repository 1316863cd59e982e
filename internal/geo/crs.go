package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultGeoJSONCRS applies to GeoJSON without a crs member (RFC 7946).
const DefaultGeoJSONCRS = "EPSG:4326"

var ErrUnsupportedFormat = errors.New("unsupported format")

// DetectCRS reports the coordinate reference system declared by a GeoJSON
// file, a .prj file, or the .prj sidecar of a raster.
func DetectCRS(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return geoJSONCRS(path)
	case ".prj":
		return prjCRS(path)
	case ".asc", ".tif", ".tiff", ".shp":
		sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".prj"
		if _, err := os.Stat(sidecar); err != nil {
			return "", fmt.Errorf("%s has no .prj sidecar", filepath.Base(path))
		}
		return prjCRS(sidecar)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func geoJSONCRS(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var doc struct {
		Type string `json:"type"`
		CRS  *struct {
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("read geojson: %w", err)
	}
	if doc.Type == "" {
		return "", fmt.Errorf("read geojson: missing type member")
	}
	if doc.CRS == nil || doc.CRS.Properties.Name == "" {
		return DefaultGeoJSONCRS, nil
	}
	return normalizeCRSName(doc.CRS.Properties.Name), nil
}

// urn:ogc:def:crs:EPSG::32633 -> EPSG:32633
var urnEPSG = regexp.MustCompile(`(?i)^urn:ogc:def:crs:epsg:[^:]*:(\d+)$`)

func normalizeCRSName(name string) string {
	if m := urnEPSG.FindStringSubmatch(name); m != nil {
		return "EPSG:" + m[1]
	}
	if strings.EqualFold(name, "urn:ogc:def:crs:OGC:1.3:CRS84") {
		return DefaultGeoJSONCRS
	}
	return name
}

// Leading WKT node: PROJCS["name", GEOGCS["name", ...
var wktHead = regexp.MustCompile(`^\s*(PROJCS|GEOGCS|PROJCRS|GEOGCRS|GEODCRS)\s*\[\s*"([^"]+)"`)

func prjCRS(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	m := wktHead.FindStringSubmatch(string(data))
	if m == nil {
		return "", fmt.Errorf("%s: not a WKT definition", filepath.Base(path))
	}
	return m[2], nil
}
