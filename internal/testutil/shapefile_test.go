package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePointsCompanionNames(t *testing.T) {
	dir := t.TempDir()
	WritePoints(t, filepath.Join(dir, "towns.shp"), Place{Name: "A"})
	WritePoints(t, filepath.Join(dir, "sub", "ROADS.SHP"), Place{Name: "B"})

	names := func(d string) []string {
		entries, err := os.ReadDir(d)
		require.NoError(t, err)
		var out []string
		for _, e := range entries {
			if !e.IsDir() {
				out = append(out, e.Name())
			}
		}
		sort.Strings(out)
		return out
	}

	assert.Equal(t, []string{"towns.dbf", "towns.shp", "towns.shx"}, names(dir))
	assert.Equal(t, []string{"ROADS.SHP", "ROADS.dbf", "ROADS.shx"}, names(filepath.Join(dir, "sub")))
}
