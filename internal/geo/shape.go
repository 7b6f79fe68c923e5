// Package geo converts shapefile records into geographic data structures.
package geo

import (
	"errors"
	"fmt"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrUnsupportedShape is returned for shape types that have no 2D GeoJSON equivalent.
var ErrUnsupportedShape = errors.New("unsupported shape type")

// ShapeToGeometry converts a shapefile shape into an orb geometry.
// Z and M values are dropped. A Null shape yields a nil geometry.
func ShapeToGeometry(s shp.Shape) (orb.Geometry, error) {
	switch v := s.(type) {
	case nil, *shp.Null:
		return nil, nil

	// Points
	case *shp.Point:
		return orb.Point{v.X, v.Y}, nil
	case *shp.PointZ:
		return orb.Point{v.X, v.Y}, nil
	case *shp.PointM:
		return orb.Point{v.X, v.Y}, nil

	// MultiPoints
	case *shp.MultiPoint:
		return multiPoint(v.Points), nil
	case *shp.MultiPointZ:
		return multiPoint(v.Points), nil
	case *shp.MultiPointM:
		return multiPoint(v.Points), nil

	// Lines
	case *shp.PolyLine:
		return lines(v.Parts, v.Points), nil
	case *shp.PolyLineZ:
		return lines(v.Parts, v.Points), nil
	case *shp.PolyLineM:
		return lines(v.Parts, v.Points), nil

	// Polygons
	case *shp.Polygon:
		return polygons(v.Parts, v.Points), nil
	case *shp.PolygonZ:
		return polygons(v.Parts, v.Points), nil
	case *shp.PolygonM:
		return polygons(v.Parts, v.Points), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
}

func multiPoint(points []shp.Point) orb.MultiPoint {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, orb.Point{p.X, p.Y})
	}

	return mp
}

// splitParts cuts the flat point list into parts using the part start offsets.
// Out of range offsets are clamped.
func splitParts(parts []int32, points []shp.Point) [][]orb.Point {
	if len(parts) == 0 {
		parts = []int32{0}
	}

	out := make([][]orb.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 {
			start = 0
		}
		if end > int32(len(points)) {
			end = int32(len(points))
		}
		if start >= end {
			continue
		}

		part := make([]orb.Point, 0, end-start)
		for _, p := range points[start:end] {
			part = append(part, orb.Point{p.X, p.Y})
		}
		out = append(out, part)
	}

	return out
}

func lines(parts []int32, points []shp.Point) orb.Geometry {
	split := splitParts(parts, points)
	if len(split) == 1 {
		return orb.LineString(split[0])
	}

	mls := make(orb.MultiLineString, 0, len(split))
	for _, part := range split {
		mls = append(mls, orb.LineString(part))
	}

	return mls
}

// polygons groups rings into polygons. Shapefile outer rings are clockwise,
// holes are counter-clockwise.
func polygons(parts []int32, points []shp.Point) orb.Geometry {
	var mp orb.MultiPolygon

	for _, part := range splitParts(parts, points) {
		ring := closeRing(orb.Ring(part))

		if ring.Orientation() != orb.CCW || len(mp) == 0 {
			mp = append(mp, orb.Polygon{ring})
			continue
		}

		owner := len(mp) - 1
		for i := range mp {
			if planar.RingContains(mp[i][0], ring[0]) {
				owner = i
				break
			}
		}
		mp[owner] = append(mp[owner], ring)
	}

	switch len(mp) {
	case 0:
		return orb.Polygon{}
	case 1:
		return mp[0]
	}

	return mp
}

func closeRing(r orb.Ring) orb.Ring {
	if len(r) > 0 && r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}

	return r
}
