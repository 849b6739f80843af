package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"-"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	PasswordSalt string    `db:"password_salt" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Settings are the per-user notification and display preferences. A row is
// created with defaults at signup.
type Settings struct {
	Username       string `db:"username" json:"-"`
	EmailNotify    bool   `db:"email_notify" json:"email_notify"`
	SMSNotify      bool   `db:"sms_notify" json:"sms_notify"`
	AlertThreshold int    `db:"alert_threshold" json:"alert_threshold"`
	Theme          string `db:"theme" json:"theme"`
	Language       string `db:"language" json:"language"`
	ChartType      string `db:"chart_type" json:"chart_type"`
	ShowGrid       bool   `db:"show_grid" json:"show_grid"`
}

// DefaultSettings mirrors the column defaults of the settings table.
func DefaultSettings(username string) *Settings {
	return &Settings{
		Username:       username,
		EmailNotify:    true,
		SMSNotify:      false,
		AlertThreshold: 150,
		Theme:          "Light",
		Language:       "English",
		ChartType:      "Line",
		ShowGrid:       true,
	}
}
