// Package vector reads and writes vector geospatial datasets.
package vector

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/shp2geojson/internal/geo"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb/geojson"
)

// ErrInvalidShapefile is returned when the main file header is missing or malformed.
var ErrInvalidShapefile = errors.New("invalid shapefile")

const (
	headerSize  = 100
	fileCode    = 9994
	fileVersion = 1000
)

// ReadFile parses a shapefile (.shp with its .dbf/.cpg companions) into a feature collection.
// Records keep file order; every DBF field becomes a feature property.
func ReadFile(path string) (*geojson.FeatureCollection, error) {
	if err := checkHeader(path); err != nil {
		return nil, err
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = r.Close() }()

	decode := textDecoder(strings.TrimSuffix(path, filepath.Ext(path)))
	fields := r.Fields()

	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = geo.FieldName(field, decode)
	}

	fc := geojson.NewFeatureCollection()
	for r.Next() {
		n, shape := r.Shape()

		geometry, err := geo.ShapeToGeometry(shape)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, n, err)
		}

		feature := geojson.NewFeature(geometry)
		for i, field := range fields {
			feature.Properties[names[i]] = geo.AttributeValue(field, r.ReadAttribute(n, i), decode)
		}

		fc.Append(feature)
	}

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return fc, nil
}

// checkHeader validates the file code and version of the .shp main header.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: %s: header: %w", ErrInvalidShapefile, path, err)
	}

	code := int32(binary.BigEndian.Uint32(header[0:4]))
	version := int32(binary.LittleEndian.Uint32(header[28:32]))
	if code != fileCode || version != fileVersion {
		return fmt.Errorf("%w: %s: file code %d, version %d", ErrInvalidShapefile, path, code, version)
	}

	return nil
}
