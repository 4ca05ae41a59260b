package api

import (
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// FetchWeather returns the current weather for the configured location.
// The snapshot replaces any previously fetched one wholesale.
func (c *Client) FetchWeather() (*models.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%g", c.location.Lat))
	query.Set("lon", fmt.Sprintf("%g", c.location.Lon))

	data, err := c.get(models.PathWeather + "?" + query.Encode())
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("weather response is not valid JSON", models.PathWeather)
	}

	root := gjson.ParseBytes(data)
	temp := root.Get("temperature")
	if !temp.Exists() {
		return nil, apierrors.NewParseError("weather response has no temperature", models.PathWeather)
	}

	return &models.WeatherSnapshot{
		Temperature: temp.Float(),
		FeelsLike:   root.Get("feels_like").Float(),
		Humidity:    int(root.Get("humidity").Int()),
		Condition:   root.Get("condition").String(),
		Location:    root.Get("location").String(),
	}, nil
}
