package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/wordtiers/wordlist"
)

const (
	ConfigDataPath   = "data-path"
	ConfigSources    = "sources"
	ConfigOutputPath = "output-path"
	ConfigMinLength  = "min-length"
	ConfigMaxLength  = "max-length"
	ConfigReportPath = "report-path"
	ConfigDebug      = "debug"

	// FlagConfigFile is the name of the flag holding an explicit config file.
	FlagConfigFile = "config"
)

const (
	DefaultMinLength = 5
	DefaultMaxLength = 8
)

// DefaultSources are ordered from easiest to hardest. A word's tier is the
// 1-based position of the first of these lists that contains it.
var DefaultSources = []string{
	"CET-4.csv",
	"CET-6.csv",
	"TOEFL.csv",
	"GRE.csv",
	"Oxford Dictionary.csv",
	"All.csv",
}

var (
	ErrNoSources      = errors.New("no word sources configured")
	ErrBadLengthRange = errors.New("invalid word length range")
)

type Config struct {
	*viper.Viper
}

// Load reads defaults, an optional config file, WORDTIERS_* environment
// variables and the flags in fs, in increasing order of precedence. fs may
// be nil.
func (c *Config) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix("wordtiers")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigSources, DefaultSources)
	v.SetDefault(ConfigOutputPath, "Trimmed.csv")
	v.SetDefault(ConfigMinLength, DefaultMinLength)
	v.SetDefault(ConfigMaxLength, DefaultMaxLength)
	v.SetDefault(ConfigReportPath, "")
	v.SetDefault(ConfigDebug, false)

	cfgFile := ""
	if fs != nil {
		if f := fs.Lookup(FlagConfigFile); f != nil {
			cfgFile = f.Value.String()
		}
		if f := fs.Lookup(ConfigDebug); f != nil {
			if err := v.BindPFlag(ConfigDebug, f); err != nil {
				return err
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("wordtiers")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}
	c.Viper = v
	return nil
}

// Validate checks the length bounds and source list before any file is
// touched.
func (c *Config) Validate() error {
	minLen := c.GetInt(ConfigMinLength)
	maxLen := c.GetInt(ConfigMaxLength)
	if minLen < 1 || maxLen < minLen {
		return fmt.Errorf("%w: [%d, %d]", ErrBadLengthRange, minLen, maxLen)
	}
	if len(c.GetStringSlice(ConfigSources)) == 0 {
		return ErrNoSources
	}
	return nil
}

// Sources returns the configured word lists in priority order, with paths
// resolved against the data path.
func (c *Config) Sources() []wordlist.Source {
	paths := c.GetStringSlice(ConfigSources)
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = c.resolve(p)
	}
	return wordlist.NewSources(resolved)
}

func (c *Config) OutputPath() string {
	return c.resolve(c.GetString(ConfigOutputPath))
}

// ReportPath is empty when no report should be written.
func (c *Config) ReportPath() string {
	p := c.GetString(ConfigReportPath)
	if p == "" {
		return ""
	}
	return c.resolve(p)
}

func (c *Config) Normalizer() *wordlist.Normalizer {
	return wordlist.NewNormalizer(c.GetInt(ConfigMinLength), c.GetInt(ConfigMaxLength))
}

// SanitizedSettings is safe to log; nothing in this config is secret, but
// the data path is shown resolved.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if abs, err := filepath.Abs(c.GetString(ConfigDataPath)); err == nil {
		settings[ConfigDataPath] = abs
	}
	return settings
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.GetString(ConfigDataPath), p)
}
