package api

import (
	"github.com/tidwall/gjson"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// Ping checks that the backend is reachable and reports itself healthy.
func (c *Client) Ping() error {
	data, err := c.get(models.PathHealth)
	if err != nil {
		return err
	}

	if status := gjson.GetBytes(data, "status").String(); status != "healthy" {
		return apierrors.NewAPIError(0, models.PathHealth, "backend did not report healthy").
			WithBody(truncateBody(data))
	}

	return nil
}
