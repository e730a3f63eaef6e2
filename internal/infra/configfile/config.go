package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/customs/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a customs.yaml file and applies it on top of domain.DefaultConfig.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// Resolve picks the config for a run. An explicit path must exist; otherwise
// customs.yaml is searched upward from startDir and defaults apply when none is found.
// The returned root is the directory relative paths (e.g. log.dir) hang off.
func (f *Finder) Resolve(explicit string, startDir string) (domain.Config, string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return domain.DefaultConfig(), startDir, &domain.OpError{
				Op:   "configfile.resolve",
				Kind: domain.KindInvalidConfig,
				Path: p,
				Err:  err,
			}
		}
		cfg, err := Load(abs)
		return cfg, filepath.Dir(abs), err
	}

	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), startDir, nil
		}
		return domain.DefaultConfig(), startDir, err
	}

	cfg, err := Load(filepath.Join(root, f.fileName()))
	return cfg, root, err
}

func apply(cfg *domain.Config, y yamlConfig) error {
	c := y.Customs

	if s := strings.TrimSpace(c.BaseURL); s != "" {
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			return fmt.Errorf("base_url must be an http(s) URL, got %q", s)
		}
		cfg.BaseURL = strings.TrimRight(s, "/")
	}
	if s := strings.TrimSpace(c.UserAgent); s != "" {
		cfg.UserAgent = s
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"http.timeout", c.HTTP.Timeout, &cfg.HTTP.Timeout},
		{"http.dial_timeout", c.HTTP.DialTimeout, &cfg.HTTP.DialTimeout},
		{"http.response_header_timeout", c.HTTP.ResponseHeaderTimeout, &cfg.HTTP.ResponseHeaderTimeout},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.raw) == "" {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, v)
		}
		*d.dst = v
	}

	if c.Log.Enabled != nil {
		cfg.Log.Enabled = *c.Log.Enabled
	}
	if s := strings.TrimSpace(c.Log.Dir); s != "" {
		cfg.Log.Dir = s
	}
	return nil
}

type yamlConfig struct {
	Customs struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`

		HTTP struct {
			Timeout               string `yaml:"timeout"`
			DialTimeout           string `yaml:"dial_timeout"`
			ResponseHeaderTimeout string `yaml:"response_header_timeout"`
		} `yaml:"http"`

		Log struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"log"`
	} `yaml:"customs"`
}
