package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/blang/semver"
)

// FileName is the name used when exporting default configuration.
const FileName = "kmorph.toml"

// DefaultWindowsDicDir is where mecab-ko-msvc installs dictionary by default.
const DefaultWindowsDicDir = `C:\mecab\mecab-ko-dic`

// Logging levels.
const (
	LogNone   = "none"
	LogNormal = "normal"
	LogDebug  = "debug"
)

// AnalyzerConfig tells adapters where to look for analyzers. Empty values mean "find it yourself".
type AnalyzerConfig struct {
	MeCabPath        string   `toml:"mecab_path"`
	MeCabDicDir      string   `toml:"mecab_dic_dir"`
	WindowsMeCabPath string   `toml:"windows_mecab_path"`
	WindowsDicDir    string   `toml:"windows_dic_dir"`
	PythonPath       string   `toml:"python_path"`
	MinMeCabVersion  string   `toml:"min_mecab_version"`
	Disabled         []string `toml:"disabled"`
}

// LoggingConfig controls console logging.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Config keeps all program settings.
type Config struct {
	Analyzer AnalyzerConfig `toml:"analyzer"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns configuration used when no file is given.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			WindowsDicDir:   DefaultWindowsDicDir,
			MinMeCabVersion: "0.996.0",
			Disabled:        []string{},
		},
		Logging: LoggingConfig{
			Level: LogNormal,
		},
	}
}

// Load reads configuration from file on top of defaults. Missing file is not an error.
func Load(fname string) (*Config, error) {

	conf := Default()
	if len(fname) == 0 {
		return conf, nil
	}

	fname = ExpandPath(fname)
	if _, err := os.Stat(fname); errors.Is(err, os.ErrNotExist) {
		return conf, nil
	}

	md, err := toml.DecodeFile(fname, conf)
	if err != nil {
		return nil, fmt.Errorf("unable to parse configuration [%s]: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown configuration keys [%s]: %s", fname, strings.Join(keys, ", "))
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("bad configuration [%s]: %w", fname, err)
	}
	return conf, nil
}

// Validate checks values which cannot be checked by decoder.
func (conf *Config) Validate() error {

	if _, err := conf.MinMeCabVersion(); err != nil {
		return err
	}
	switch conf.Logging.Level {
	case LogNone, LogNormal, LogDebug:
	default:
		return fmt.Errorf("unknown logging level %q", conf.Logging.Level)
	}
	for _, p := range []string{conf.Analyzer.MeCabPath, conf.Analyzer.WindowsMeCabPath, conf.Analyzer.PythonPath} {
		if len(p) > 0 && !filepath.IsAbs(ExpandPath(p)) && filepath.Base(p) != p {
			return fmt.Errorf("path to executable must be absolute or plain name [%s]", p)
		}
	}
	return nil
}

// MinMeCabVersion returns oldest mecab version we are willing to work with.
func (conf *Config) MinMeCabVersion() (semver.Version, error) {
	if len(conf.Analyzer.MinMeCabVersion) == 0 {
		return semver.Version{}, nil
	}
	v, err := semver.ParseTolerant(conf.Analyzer.MinMeCabVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("unable to parse minimal mecab version %q: %w", conf.Analyzer.MinMeCabVersion, err)
	}
	return v, nil
}

// Save writes configuration to file.
func (conf *Config) Save(fname string) error {

	fname = ExpandPath(fname)
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create configuration directory: %w", err)
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create configuration file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(conf); err != nil {
		return fmt.Errorf("unable to encode configuration: %w", err)
	}
	return nil
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
