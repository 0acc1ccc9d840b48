package stream

import (
	"encoding/json"
	"fmt"
	"os"
)

// Point that represents LED location
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RawCalibrationData pairs pixel indices with their measured locations.
type RawCalibrationData struct {
	Pixels    []int32 `json:"pixels"`
	Locations []Point `json:"locations"`
}

// StripLocations lays n pixels out evenly along the horizontal centre line.
func StripLocations(n int) []Point {
	locations := make([]Point, n)
	for i := range locations {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		locations[i] = Point{X: x, Y: 0.5}
	}
	return locations
}

// Resolve resolves calibration data into a location per pixel. Pixels
// without a measurement keep their place along the strip.
func (d *RawCalibrationData) Resolve(n int) ([]Point, error) {
	if len(d.Pixels) != len(d.Locations) {
		return nil, fmt.Errorf("calibration has %d pixels but %d locations", len(d.Pixels), len(d.Locations))
	}

	locations := StripLocations(n)
	for i, pixel := range d.Pixels {
		if pixel < 0 || int(pixel) >= n {
			return nil, fmt.Errorf("calibrated pixel %d out of range", pixel)
		}
		locations[pixel] = d.Locations[i]
	}
	return locations, nil
}

// LoadLocations reads calibration data from a JSON file.
func LoadLocations(path string, n int) ([]Point, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data RawCalibrationData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data.Resolve(n)
}
