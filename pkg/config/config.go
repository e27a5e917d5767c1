// Package config loads skillhook's own settings with koanf: embedded
// defaults first, then the user-level skillhook.toml from the XDG
// config dir, then the project-level .skillhook.toml. Later layers
// override earlier ones key by key.
package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	skerrors "github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded defaults, used by the init
// command to seed a user config file.
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// Settings is the unmarshaled skillhook configuration.
type Settings struct {
	Matching MatchingSettings `koanf:"matching"`
	Output   OutputSettings   `koanf:"output"`
	Watch    WatchSettings    `koanf:"watch"`
	Paths    PathSettings     `koanf:"paths"`
}

// MatchingSettings controls suggestion emission.
type MatchingSettings struct {
	// MaxSuggestions caps suggestions per event. 0 means unlimited.
	MaxSuggestions int `koanf:"max_suggestions"`
}

// OutputSettings controls rendering.
type OutputSettings struct {
	Color  string `koanf:"color"`  // auto, always, never
	Format string `koanf:"format"` // text, json
}

// WatchSettings controls the watch command.
type WatchSettings struct {
	DebounceMs int `koanf:"debounce_ms"`
}

// PathSettings overrides file discovery.
type PathSettings struct {
	RulesFile string `koanf:"rules_file"`
	SkillsDir string `koanf:"skills_dir"`
}

// Load builds the effective Settings for the given paths.
func Load(p *paths.Paths) (*Settings, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config
	// 3. Project config
	for _, path := range []string{p.UserConfigFile(), p.ProjectConfigFile()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, skerrors.Wrapf(err, skerrors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config layer")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigValid, "invalid configuration")
	}

	return &settings, nil
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
