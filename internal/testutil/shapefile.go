// Package testutil provides shapefile fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
)

// Place is a point record with NAME and POP attributes.
type Place struct {
	Name       string
	X, Y       float64
	Population int
}

// WritePoints creates a point shapefile (.shp, .shx, .dbf) at path.
// The .shp extension may be in any case; companions are always lower case.
func WritePoints(t *testing.T, path string, places ...Place) string {
	t.Helper()

	fields := []shp.Field{
		shp.StringField("NAME", 32),
		shp.NumberField("POP", 10),
	}

	return writeShapes(t, path, shp.POINT, fields, len(places), func(w *shp.Writer, i int) {
		p := places[i]
		row := int(w.Write(&shp.Point{X: p.X, Y: p.Y}))
		if err := w.WriteAttribute(row, 0, p.Name); err != nil {
			t.Fatalf("write NAME: %v", err)
		}
		if err := w.WriteAttribute(row, 1, p.Population); err != nil {
			t.Fatalf("write POP: %v", err)
		}
	})
}

// WriteLabels creates a point shapefile with one text field named field,
// one record per value. Names and values are written as raw bytes.
func WriteLabels(t *testing.T, path, field string, values ...string) string {
	t.Helper()

	fields := []shp.Field{shp.StringField(field, 32)}

	return writeShapes(t, path, shp.POINT, fields, len(values), func(w *shp.Writer, i int) {
		row := int(w.Write(&shp.Point{X: float64(i), Y: float64(i)}))
		if err := w.WriteAttribute(row, 0, values[i]); err != nil {
			t.Fatalf("write %s: %v", field, err)
		}
	})
}

// WritePolygons creates a polygon shapefile with a single ID attribute.
// Each entry of rings is one record.
func WritePolygons(t *testing.T, path string, records ...[][]shp.Point) string {
	t.Helper()

	fields := []shp.Field{shp.NumberField("ID", 6)}

	return writeShapes(t, path, shp.POLYGON, fields, len(records), func(w *shp.Writer, i int) {
		poly := shp.Polygon(*shp.NewPolyLine(records[i]))
		row := int(w.Write(&poly))
		if err := w.WriteAttribute(row, 0, i+1); err != nil {
			t.Fatalf("write ID: %v", err)
		}
	})
}

func writeShapes(t *testing.T, path string, shapeType shp.ShapeType, fields []shp.Field, n int, write func(w *shp.Writer, i int)) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	// companions are derived from a lower case .shp name
	lower := strings.TrimSuffix(path, filepath.Ext(path)) + ".shp"

	w, err := shp.Create(lower, shapeType)
	if err != nil {
		t.Fatalf("create %s: %v", lower, err)
	}
	if err := w.SetFields(fields); err != nil {
		t.Fatalf("set fields: %v", err)
	}
	for i := 0; i < n; i++ {
		write(w, i)
	}
	w.Close()

	// the writer names the table "<base>dbf" without the dot
	base := strings.TrimSuffix(lower, ".shp")
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		t.Fatal(err)
	}

	if lower != path {
		if err := os.Rename(lower, path); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// WriteCodePage writes the .cpg companion for the shapefile at path.
func WriteCodePage(t *testing.T, path, codePage string) {
	t.Helper()

	cpg := strings.TrimSuffix(path, filepath.Ext(path)) + ".cpg"
	if err := os.WriteFile(cpg, []byte(codePage), 0o644); err != nil {
		t.Fatal(err)
	}
}

// WriteFile writes raw content, creating parent directories.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}
