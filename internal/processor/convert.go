// Package processor discovers shapefiles and converts them to GeoJSON.
package processor

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/shp2geojson/internal/vector"

	"github.com/rs/zerolog/log"
)

const (
	// ShapefileExt is the extension that marks a file as a shapefile (any case).
	ShapefileExt = ".shp"
	// GeoJSONExt replaces ShapefileExt in output names.
	GeoJSONExt = ".geojson"
)

// ConvertShapefiles walks inputRoot recursively and writes every shapefile found
// as GeoJSON into the flat outputRoot directory, using the given vector driver.
//
// The first read or write failure aborts the run. Files converted before it
// stay on disk. The returned count covers the files written so far.
// Directories that cannot be listed, a missing inputRoot included, are skipped.
func ConvertShapefiles(inputRoot, outputRoot, driver string) (int, error) {
	if err := vector.CheckDriver(driver); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return 0, err
	}

	c := &converter{outputRoot: outputRoot, driver: driver}
	err := c.walk(inputRoot)

	return c.converted, err
}

type converter struct {
	outputRoot string
	driver     string
	converted  int
}

// walk converts the shapefiles of dir, then descends into its subdirectories.
// Links to directories are not followed.
func (c *converter) walk(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				continue
			}
		}

		if !IsShapefile(entry.Name()) {
			continue
		}

		if err := convertFile(path, filepath.Join(c.outputRoot, OutputName(entry.Name())), c.driver); err != nil {
			return err
		}
		c.converted++
	}

	for _, sub := range subdirs {
		if err := c.walk(sub); err != nil {
			return err
		}
	}

	return nil
}

// convertFile returns vector errors as is; they already name the file.
func convertFile(src, dst, driver string) error {
	fc, err := vector.ReadFile(src)
	if err != nil {
		return err
	}

	if err := vector.WriteFile(fc, dst, driver); err != nil {
		return err
	}

	log.Info().
		Str("source", src).
		Str("dest", dst).
		Int("features", len(fc.Features)).
		Msgf("Converted %s -> %s", src, dst)

	return nil
}

// IsShapefile reports whether name carries the .shp extension, ignoring case.
func IsShapefile(name string) bool {
	return len(name) >= len(ShapefileExt) &&
		strings.EqualFold(name[len(name)-len(ShapefileExt):], ShapefileExt)
}

// OutputName derives the GeoJSON file name by replacing the first occurrence
// of ".shp" (ASCII case-insensitive) with ".geojson". The match is not anchored
// to the end, so "my.shpfile.shp" becomes "my.geojsonfile.shp".
func OutputName(name string) string {
	i := indexFoldASCII(name, ShapefileExt)
	if i < 0 {
		return name
	}

	return name[:i] + GeoJSONExt + name[i+len(ShapefileExt):]
}

func indexFoldASCII(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		match := true
		for j := 0; j < len(substr); j++ {
			if lowerASCII(s[i+j]) != lowerASCII(substr[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}

	return -1
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
