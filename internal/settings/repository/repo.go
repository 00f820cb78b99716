package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"
)

const settingsPath = "settings"

// SettingsRepository persists the settings singleton. cvLink is created
// implicitly on first save and overwritten, not versioned, on each save.
type SettingsRepository struct {
	db *db.Client
}

func NewSettingsRepository(client *db.Client) *SettingsRepository {
	return &SettingsRepository{db: client}
}

// CVLink returns the stored link, or "" when none was ever saved.
func (r *SettingsRepository) CVLink(ctx context.Context) (string, error) {
	var link string
	if err := r.db.NewRef(settingsPath + "/cvLink").Get(ctx, &link); err != nil {
		return "", fmt.Errorf("get cv link: %w", err)
	}
	return link, nil
}

// SetCVLink overwrites the link. The write is a merge on the settings
// object so future settings fields survive it.
func (r *SettingsRepository) SetCVLink(ctx context.Context, link string) error {
	payload := map[string]interface{}{"cvLink": link}
	if err := r.db.NewRef(settingsPath).Update(ctx, payload); err != nil {
		return fmt.Errorf("set cv link: %w", err)
	}
	return nil
}
