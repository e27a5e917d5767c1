package rules

import (
	"os"

	"github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/paths"
)

// Load reads and parses a rules document from disk. A missing file is
// reported as CONFIG_LOAD; callers decide whether that is fatal (for
// matching it never is: they fail open with an empty document).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read rules file %s", path)
	}
	return ParseDocument(data)
}

// LoadLayered loads the user-level and project-level rules documents
// and merges them, project rules winning per skill id. Either layer
// may be absent. A structurally invalid document is returned as an
// error for that layer but does not poison the other layer.
func LoadLayered(p *paths.Paths) (*Document, []error) {
	logger := logging.GetLogger("rules.load")

	var layerErrs []error

	user, err := loadOptional(p.UserRulesFile())
	if err != nil {
		layerErrs = append(layerErrs, err)
	}
	project, err := loadOptional(p.ProjectRulesFile())
	if err != nil {
		layerErrs = append(layerErrs, err)
	}

	merged := Merge(user, project)
	logger.Debug().
		Int("userSkills", skillCount(user)).
		Int("projectSkills", skillCount(project)).
		Int("merged", skillCount(merged)).
		Msg("Loaded layered rules")

	return merged, layerErrs
}

// loadOptional loads a rules file, treating absence as an empty
// document rather than an error.
func loadOptional(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(path)
}

// Merge combines a user-level and a project-level document. Project
// rules override user rules with the same skill id; project rules keep
// their declaration order, user-only rules follow in theirs.
func Merge(user, project *Document) *Document {
	merged := &Document{}
	if project != nil {
		merged.Version = project.Version
		merged.Description = project.Description
	} else if user != nil {
		merged.Version = user.Version
		merged.Description = user.Description
	}

	seen := make(map[string]bool)
	if project != nil {
		for _, e := range project.Skills {
			merged.Skills = append(merged.Skills, e)
			seen[e.ID] = true
		}
	}
	if user != nil {
		for _, e := range user.Skills {
			if !seen[e.ID] {
				merged.Skills = append(merged.Skills, e)
				seen[e.ID] = true
			}
		}
	}

	return merged
}

func skillCount(d *Document) int {
	if d == nil {
		return 0
	}
	return len(d.Skills)
}
