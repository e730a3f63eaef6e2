package domain

import "time"

// Config represents the customs configuration loaded from customs.yaml.
type Config struct {
	BaseURL   string
	UserAgent string
	HTTP      HTTPConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Timeout               time.Duration
	DialTimeout           time.Duration
	ResponseHeaderTimeout time.Duration
}

type LogConfig struct {
	Enabled bool
	Dir     string
}

const DefaultBaseURL = "https://unipass.customs.go.kr"

// DefaultConfig provides sane defaults if customs.yaml is missing or partial.
// An empty UserAgent is filled in by the CLI with the build version.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "",
		HTTP: HTTPConfig{
			Timeout:               30 * time.Second,
			DialTimeout:           5 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Enabled: false,
			Dir:     ".customs/logs",
		},
	}
}
