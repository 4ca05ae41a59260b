package models

import "fmt"

// WeatherSnapshot is the current weather at a location. Each fetch replaces
// the previous snapshot wholesale; there are no merge semantics.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Location    string  `json:"location"`
}

// Summary returns a one-line rendering like "24.5°C, light rain in Delhi".
func (w WeatherSnapshot) Summary() string {
	return fmt.Sprintf("%.1f°C, %s in %s", w.Temperature, w.Condition, w.Location)
}
