package domain

import "time"

// DefaultNotificationMS is the default display duration for notification
// messages, in milliseconds.
const DefaultNotificationMS = 3000

// Config is the application configuration loaded from config.toml.
// Zero values mean "use the default".
type Config struct {
	DataDir        string `toml:"data_dir"`        // Where state.json and logs live
	LogLevel       string `toml:"log_level"`       // debug, info, warn, error
	NotificationMS int    `toml:"notification_ms"` // Notification display duration
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		NotificationMS: DefaultNotificationMS,
	}
}

// NotificationDuration returns the notification display duration.
func (c *Config) NotificationDuration() time.Duration {
	ms := c.NotificationMS
	if ms <= 0 {
		ms = DefaultNotificationMS
	}
	return time.Duration(ms) * time.Millisecond
}
