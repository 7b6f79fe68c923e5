package vector

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// DriverGeoJSON is the RFC 7946 GeoJSON driver name.
const DriverGeoJSON = "GeoJSON"

// ErrUnknownDriver is returned for driver names missing from the registry.
var ErrUnknownDriver = errors.New("unknown driver")

type encodeFunc func(w io.Writer, fc *geojson.FeatureCollection) error

var drivers = map[string]encodeFunc{
	strings.ToLower(DriverGeoJSON): encodeGeoJSON,
}

// CheckDriver reports whether a driver name is known. Names are case-insensitive.
func CheckDriver(driver string) error {
	_, err := lookupDriver(driver)
	return err
}

func lookupDriver(driver string) (encodeFunc, error) {
	enc, ok := drivers[strings.ToLower(driver)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	return enc, nil
}

// WriteFile encodes the feature collection to path with the named driver,
// replacing any existing file.
func WriteFile(fc *geojson.FeatureCollection, path, driver string) (err error) {
	encode, err := lookupDriver(driver)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := encode(f, fc); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}

func encodeGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	return json.NewEncoder(w).Encode(fc)
}
