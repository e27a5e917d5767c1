// Package skills discovers and parses skill documents: markdown files
// with YAML frontmatter, either laid out as <dir>/<name>/SKILL.md or
// as flat <dir>/<name>.md files.
//
// Skills live at two levels, project (.claude/skills/) and user
// (XDG config dir). Project-level skills shadow user-level skills with
// the same name.
package skills

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/paths"
)

// Skill is a loaded skill document.
type Skill struct {
	Name        string // unique name, frontmatter or filename fallback
	Description string // short description from frontmatter
	FilePath    string // source file path
	Content     string // markdown body without frontmatter
}

// frontmatter is the YAML header of a skill document.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadAll discovers skills from the project and user skill
// directories. Project-level skills take precedence over user-level
// skills with the same name.
func LoadAll(p *paths.Paths) []Skill {
	logger := logging.GetLogger("skills")

	var skills []Skill
	seen := make(map[string]bool)

	for _, dir := range []string{p.ProjectSkillsDir(), p.UserSkillsDir()} {
		for _, s := range loadDir(dir) {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			skills = append(skills, s)
		}
	}

	logger.Debug().Int("count", len(skills)).Msg("Loaded skill documents")
	return skills
}

// Find returns the named skill from the discovered set.
func Find(p *paths.Paths, name string) (Skill, error) {
	for _, s := range LoadAll(p) {
		if s.Name == name {
			return s, nil
		}
	}
	return Skill{}, errors.Newf(errors.ErrSkillNotFound, "no skill document named %q", name)
}

// loadDir reads all skills from one directory, accepting both the
// <name>/SKILL.md layout and flat <name>.md files.
func loadDir(dir string) []Skill {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var skills []Skill
	for _, entry := range entries {
		var path, fallback string
		if entry.IsDir() {
			path = filepath.Join(dir, entry.Name(), paths.SkillFileName)
			fallback = entry.Name()
		} else if strings.HasSuffix(entry.Name(), ".md") {
			path = filepath.Join(dir, entry.Name())
			fallback = strings.TrimSuffix(entry.Name(), ".md")
		} else {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		skill := Parse(string(data), path)
		if skill.Name == "" {
			skill.Name = fallback
		}
		skills = append(skills, skill)
	}
	return skills
}

// Parse parses a skill document with optional YAML frontmatter
// delimited by "---" lines at the top of the file.
func Parse(content, filePath string) Skill {
	s := Skill{FilePath: filePath}

	if !strings.HasPrefix(content, "---") {
		s.Content = strings.TrimSpace(content)
		return s
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		s.Content = strings.TrimSpace(content)
		return s
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		logger := logging.GetLogger("skills")
		logger.Warn().Str("path", filePath).Err(err).Msg("Invalid skill frontmatter, using body only")
	} else {
		s.Name = fm.Name
		s.Description = fm.Description
	}

	s.Content = strings.TrimSpace(parts[2])
	return s
}
