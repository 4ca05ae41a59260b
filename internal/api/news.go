package api

import (
	"github.com/tidwall/gjson"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// FetchNews returns the trending headlines. The list replaces any
// previously fetched one wholesale.
func (c *Client) FetchNews() ([]models.NewsItem, error) {
	data, err := c.get(models.PathNews)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("news response is not valid JSON", models.PathNews)
	}

	list := gjson.GetBytes(data, "news")
	if !list.IsArray() {
		return nil, apierrors.NewParseError("news response has no news list", models.PathNews)
	}

	items := []models.NewsItem{}
	list.ForEach(func(_, value gjson.Result) bool {
		items = append(items, models.NewsItem{
			Title:  value.Get("title").String(),
			Source: value.Get("source").String(),
			Time:   value.Get("time").String(),
		})
		return true
	})

	return items, nil
}
