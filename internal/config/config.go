package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"
	"github.com/tliron/commonlog"

	"ssac/internal/ir"
)

// ToolVersion is the version of the ssac toolchain checked against the
// [compiler] version constraint of a config file
const ToolVersion = "0.1.0"

// FileName is the name of the config file looked up next to the sources
const FileName = "ssac.toml"

const (
	DefaultMaxRounds = 16
	DefaultDebounce  = 200 * time.Millisecond
)

var log = commonlog.GetLogger("ssac.config")

// Config is the validated configuration of one ssac invocation
type Config struct {
	// Path is the file the config was loaded from, empty for defaults
	Path string

	Optimize  ir.PipelineOptions
	Verbosity int
	Debounce  time.Duration
}

// tomlConfigFile represents the config file as it is encoded in TOML
type tomlConfigFile struct {
	Compiler *tomlCompiler `toml:"compiler"`
	Optimize *tomlOptimize `toml:"optimize"`
	Log      *tomlLog      `toml:"log"`
	Watch    *tomlWatch    `toml:"watch"`
}

type tomlCompiler struct {
	Version string `toml:"version"`
}

type tomlOptimize struct {
	Mode      string   `toml:"mode"`
	MaxRounds *int     `toml:"max-rounds"`
	Roots     string   `toml:"roots"`
	LiveOut   []string `toml:"live-out,omitempty"`
	Verify    bool     `toml:"verify"`
}

type tomlLog struct {
	Verbosity int `toml:"verbosity"`
}

type tomlWatch struct {
	Debounce string `toml:"debounce"`
}

// Default returns the configuration used when no config file exists: the
// minimal pipeline without roots
func Default() *Config {
	return &Config{
		Optimize: ir.PipelineOptions{
			Mode:      ir.ModeMinimal,
			MaxRounds: DefaultMaxRounds,
			Roots:     ir.RootsNone,
		},
		Debounce: DefaultDebounce,
	}
}

// Load reads and validates the config file at path
func Load(path string) (*Config, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(buff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path

	log.Debugf("loaded config from %s", path)
	return cfg, nil
}

// Find loads the config file of dir or of its closest ancestor that has one.
// Without any config file the defaults are returned.
func Find(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Parse decodes and validates the contents of a config file. Missing
// sections and keys keep their defaults.
func Parse(buff []byte) (*Config, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	cfg := Default()

	if tcf.Compiler != nil {
		if err := checkVersion(tcf.Compiler.Version); err != nil {
			return nil, err
		}
	}

	if tcf.Optimize != nil {
		if err := applyOptimize(cfg, tcf.Optimize); err != nil {
			return nil, err
		}
	}

	if tcf.Log != nil {
		if tcf.Log.Verbosity < 0 {
			return nil, fmt.Errorf("log verbosity must not be negative, got %d", tcf.Log.Verbosity)
		}
		cfg.Verbosity = tcf.Log.Verbosity
	}

	if tcf.Watch != nil && tcf.Watch.Debounce != "" {
		debounce, err := time.ParseDuration(tcf.Watch.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch debounce: %w", err)
		}
		if debounce < 0 {
			return nil, fmt.Errorf("watch debounce must not be negative, got %s", debounce)
		}
		cfg.Debounce = debounce
	}

	return cfg, nil
}

// checkVersion ensures the running toolchain satisfies the version constraint
// of the config file
func checkVersion(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid compiler version constraint %q: %w", constraint, err)
	}

	if !c.Check(semver.MustParse(ToolVersion)) {
		return fmt.Errorf("ssac %s does not satisfy the required version %q", ToolVersion, constraint)
	}
	return nil
}

func applyOptimize(cfg *Config, opt *tomlOptimize) error {
	if opt.Mode != "" {
		mode, err := ir.ParseMode(opt.Mode)
		if err != nil {
			return err
		}
		cfg.Optimize.Mode = mode
	}

	if opt.Roots != "" {
		roots, err := ir.ParseRootPolicy(opt.Roots)
		if err != nil {
			return err
		}
		cfg.Optimize.Roots = roots
	}

	if opt.MaxRounds != nil {
		if *opt.MaxRounds < 0 {
			return fmt.Errorf("max-rounds must not be negative, got %d", *opt.MaxRounds)
		}
		cfg.Optimize.MaxRounds = *opt.MaxRounds
	}

	cfg.Optimize.LiveOut = opt.LiveOut
	cfg.Optimize.Verify = opt.Verify
	return nil
}
