package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/readscope/pkg/domain"
)

// setting keys for user-adjustable engagement thresholds
const (
	settingThresholdSeconds   = "threshold_seconds"
	settingThresholdScrollPct = "threshold_scroll_pct"
)

// SettingRepository handles key-value settings
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string when missing
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetThresholds returns the engagement thresholds, falling back to the given
// defaults for keys the user never adjusted
func (r *SettingRepository) GetThresholds(ctx context.Context, defaults domain.Thresholds) (domain.Thresholds, error) {
	th := defaults

	if v, err := r.GetSetting(ctx, settingThresholdSeconds); err != nil {
		return domain.Thresholds{}, err
	} else if v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return domain.Thresholds{}, fmt.Errorf("parse %s: %w", settingThresholdSeconds, err)
		}
		th.Seconds = seconds
	}

	if v, err := r.GetSetting(ctx, settingThresholdScrollPct); err != nil {
		return domain.Thresholds{}, err
	} else if v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Thresholds{}, fmt.Errorf("parse %s: %w", settingThresholdScrollPct, err)
		}
		th.ScrollPct = pct
	}

	return th, nil
}

// SetThresholds persists user-adjusted engagement thresholds
func (r *SettingRepository) SetThresholds(ctx context.Context, th domain.Thresholds) error {
	if th.Seconds <= 0 {
		return fmt.Errorf("threshold seconds must be positive")
	}
	if th.ScrollPct < 0 || th.ScrollPct > 100 {
		return fmt.Errorf("threshold scroll pct must be within [0,100]")
	}

	if err := r.SetSetting(ctx, settingThresholdSeconds, strconv.Itoa(th.Seconds)); err != nil {
		return err
	}
	return r.SetSetting(ctx, settingThresholdScrollPct, strconv.FormatFloat(th.ScrollPct, 'f', -1, 64))
}
