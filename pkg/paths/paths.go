// Package paths provides centralized path handling for skillhook.
// It implements XDG Base Directory specification compliance for the
// user-level files and .claude-directory discovery for project-level
// files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/dotskills/skillhook/pkg/logging"
)

// Environment variable names
const (
	// EnvProjectRoot overrides project root discovery
	EnvProjectRoot = "SKILLHOOK_PROJECT_ROOT"

	// EnvConfigDir overrides the XDG config directory for skillhook
	EnvConfigDir = "SKILLHOOK_CONFIG_DIR"
)

// Well-known file and directory names. These mirror the layout the
// assistant host uses and are not user-configurable.
const (
	// ClaudeDirName is the per-project assistant configuration directory
	ClaudeDirName = ".claude"

	// RulesFileName is the skill activation rules document
	RulesFileName = "skill-rules.json"

	// SkillsDirName is the subdirectory holding skill documents
	SkillsDirName = "skills"

	// SkillFileName is the per-skill document inside a skill directory
	SkillFileName = "SKILL.md"

	// AppDirName is skillhook's own directory under XDG locations
	AppDirName = "skillhook"

	// ConfigFileName is skillhook's own settings file
	ConfigFileName = "skillhook.toml"
)

// Paths resolves all file locations for one invocation.
type Paths struct {
	projectRoot string
}

// New creates a Paths instance rooted at the given project directory.
// An empty root triggers discovery: SKILLHOOK_PROJECT_ROOT, then an
// upward walk from the working directory looking for a .claude
// directory, then a .git directory, falling back to the working
// directory itself.
func New(projectRoot string) (*Paths, error) {
	if projectRoot == "" {
		projectRoot = discoverProjectRoot()
	}
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}
	return &Paths{projectRoot: abs}, nil
}

// ProjectRoot returns the resolved project root.
func (p *Paths) ProjectRoot() string { return p.projectRoot }

// ProjectRulesFile returns the project-level rules document path.
// Both .claude/skill-rules.json and .claude/skills/skill-rules.json
// are accepted; the first one that exists wins, defaulting to the
// former when neither exists yet.
func (p *Paths) ProjectRulesFile() string {
	candidates := []string{
		filepath.Join(p.projectRoot, ClaudeDirName, RulesFileName),
		filepath.Join(p.projectRoot, ClaudeDirName, SkillsDirName, RulesFileName),
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return candidates[0]
}

// UserRulesFile returns the user-level rules document path under the
// XDG config dir.
func (p *Paths) UserRulesFile() string {
	return filepath.Join(configDir(), RulesFileName)
}

// ProjectSkillsDir returns the project-level skill documents directory.
func (p *Paths) ProjectSkillsDir() string {
	return filepath.Join(p.projectRoot, ClaudeDirName, SkillsDirName)
}

// UserSkillsDir returns the user-level skill documents directory.
func (p *Paths) UserSkillsDir() string {
	return filepath.Join(configDir(), SkillsDirName)
}

// UserConfigFile returns the user-level skillhook.toml path.
func (p *Paths) UserConfigFile() string {
	return filepath.Join(configDir(), ConfigFileName)
}

// ProjectConfigFile returns the project-level .skillhook.toml path.
func (p *Paths) ProjectConfigFile() string {
	return filepath.Join(p.projectRoot, ".skillhook.toml")
}

func configDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

func discoverProjectRoot() string {
	logger := logging.GetLogger("paths")

	if root := os.Getenv(EnvProjectRoot); root != "" {
		return root
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	for _, marker := range []string{ClaudeDirName, ".git"} {
		dir := cwd
		for {
			if dirExists(filepath.Join(dir, marker)) {
				logger.Debug().Str("root", dir).Str("marker", marker).Msg("Discovered project root")
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return cwd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
