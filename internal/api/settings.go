package api

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/meetly-app/meetly-cli/internal/models"
)

// GetUserSettings fetches the booking-window preferences.
func (c *Client) GetUserSettings(ctx context.Context) (models.UserSettings, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/settings", nil)
	if err != nil {
		return models.UserSettings{}, err
	}

	var settings models.UserSettings
	if err := json.Unmarshal(body, &settings); err != nil {
		return models.UserSettings{}, fmt.Errorf("failed to decode user settings: %w", err)
	}
	return settings, nil
}

// UpsertUserSettings applies a partial settings update. Validation is the
// caller's responsibility; nothing is sent when the patch is empty.
func (c *Client) UpsertUserSettings(ctx context.Context, patch models.UserSettingsPatch) error {
	if patch == (models.UserSettingsPatch{}) {
		return nil
	}
	_, err := c.do(ctx, http.MethodPatch, "/users/settings", patch)
	return err
}
