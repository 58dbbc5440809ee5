package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.NoErr(cfg.Validate())
	is.Equal(cfg.GetInt(ConfigMinLength), 5)
	is.Equal(cfg.GetInt(ConfigMaxLength), 8)
	is.Equal(cfg.OutputPath(), filepath.Join("data", "Trimmed.csv"))
	is.Equal(cfg.ReportPath(), "")

	sources := cfg.Sources()
	is.Equal(len(sources), 6)
	is.Equal(sources[0].Path, filepath.Join("data", "CET-4.csv"))
	is.Equal(sources[0].Rank, 1)
	is.Equal(sources[4].Name, "Oxford Dictionary")
	is.Equal(sources[5].Rank, 6)
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDTIERS_MIN_LENGTH", "4")
	t.Setenv("WORDTIERS_DATA_PATH", "/srv/words")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigMinLength), 4)
	is.Equal(cfg.OutputPath(), "/srv/words/Trimmed.csv")
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "wordtiers.yaml")
	is.NoErr(os.WriteFile(p, []byte(`
data-path: `+dir+`
min-length: 3
max-length: 6
output-path: out.csv
report-path: report.yaml
sources:
  - easy.txt
  - /abs/hard.txt
`), 0644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(FlagConfigFile, "", "")
	fs.Bool(ConfigDebug, false, "")
	is.NoErr(fs.Parse([]string{"--config", p, "--debug"}))

	cfg := &Config{}
	is.NoErr(cfg.Load(fs))
	is.NoErr(cfg.Validate())
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetInt(ConfigMinLength), 3)
	is.Equal(cfg.OutputPath(), filepath.Join(dir, "out.csv"))
	is.Equal(cfg.ReportPath(), filepath.Join(dir, "report.yaml"))

	sources := cfg.Sources()
	is.Equal(len(sources), 2)
	is.Equal(sources[0].Path, filepath.Join(dir, "easy.txt"))
	is.Equal(sources[1].Path, "/abs/hard.txt")
	is.Equal(sources[1].Rank, 2)
}

func TestMissingConfigFile(t *testing.T) {
	is := is.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(FlagConfigFile, "", "")
	is.NoErr(fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
	cfg := &Config{}
	is.True(cfg.Load(fs) != nil)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	type tc struct {
		minLen  int
		maxLen  int
		sources []string
		ok      bool
	}
	cases := []tc{
		{5, 8, []string{"a.csv"}, true},
		{3, 3, []string{"a.csv"}, true},
		{0, 8, []string{"a.csv"}, false},
		{9, 8, []string{"a.csv"}, false},
		{5, 8, []string{}, false},
	}
	for _, c := range cases {
		cfg := &Config{}
		is.NoErr(cfg.Load(nil))
		cfg.Set(ConfigMinLength, c.minLen)
		cfg.Set(ConfigMaxLength, c.maxLen)
		cfg.Set(ConfigSources, c.sources)
		is.Equal(cfg.Validate() == nil, c.ok)
	}
}
