package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/viper"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	BalenaURL      string        `mapstructure:"balenaUrl"`
	APIURL         string        `mapstructure:"apiUrl"`
	DataDirectory  string        `mapstructure:"dataDirectory"`
	APIKey         string        `mapstructure:"apiKey"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	Debug          bool          `mapstructure:"debug"`
}

// Options control where Load looks for settings. Zero values use the
// user's home directory and the current working directory.
type Options struct {
	HomeDir string
	WorkDir string
}

const (
	envPrefix      = "BALENARC"
	configName     = ".balenarc"
	configType     = "yaml"
	defaultBalena  = "balena-cloud.com"
	defaultTimeout = 30 * time.Second
)

// Load resolves settings from, in decreasing precedence: BALENARC_* env
// variables, ./.balenarc.yml, ~/.balenarc.yml and built-in defaults.
// A DEBUG variable that is set and not "0", "no", "false" or "off" also
// enables debug; any other value, such as a debug namespace, is accepted.
func Load(opts Options) (*Settings, error) {
	home := opts.HomeDir
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		home = h
	}
	work := opts.WorkDir
	if work == "" {
		w, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		work = w
	}

	v := viper.New()
	setDefaults(v, home)

	if err := mergeFile(v, filepath.Join(home, configName+".yml")); err != nil {
		return nil, err
	}
	if work != home {
		if err := mergeFile(v, filepath.Join(work, configName+".yml")); err != nil {
			return nil, err
		}
	}

	for _, key := range []string{"balenaUrl", "apiUrl", "dataDirectory", "apiKey", "requestTimeout", "debug"} {
		if err := v.BindEnv(key, envName(key)); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if debugEnabled(os.Getenv("DEBUG")) {
		s.Debug = true
	}
	if s.APIURL == "" {
		s.APIURL = "https://api." + s.BalenaURL
	}

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &s, nil
}

// envName maps a camelCase settings key to its BALENARC_SNAKE_CASE variable,
// e.g. balenaUrl -> BALENARC_BALENA_URL.
func envName(key string) string {
	var b strings.Builder
	b.WriteString(envPrefix)
	b.WriteByte('_')
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func debugEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "no", "false", "off":
		return false
	default:
		return true
	}
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("balenaUrl", defaultBalena)
	v.SetDefault("apiUrl", "")
	v.SetDefault("dataDirectory", filepath.Join(home, ".balena"))
	v.SetDefault("apiKey", "")
	v.SetDefault("requestTimeout", defaultTimeout)
	v.SetDefault("debug", false)
}

// mergeFile merges a YAML settings file into v. A missing file is not an error.
func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v.SetConfigType(configType)
	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return nil
}

func validate(s *Settings) error {
	if s.BalenaURL == "" {
		return errors.New("balenaUrl is required")
	}
	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("invalid apiUrl %q: %w", s.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported apiUrl scheme %q (must be http or https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid apiUrl %q: host is required", s.APIURL)
	}
	if s.DataDirectory == "" {
		return errors.New("dataDirectory is required")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("requestTimeout must be positive, got %v", s.RequestTimeout)
	}
	return nil
}
