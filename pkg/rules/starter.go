package rules

import (
	"os"
	"path/filepath"

	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/types"
)

// Starter generates a rules document from the project's detected
// structure. It is a seed for hand-editing, not a finished
// configuration: every detected stack contributes one rule wired to a
// conventionally-named skill.
func Starter(projectRoot string) *Document {
	logger := logging.GetLogger("rules.starter")

	doc := &Document{
		Version:     "1.0",
		Description: "Skill activation rules generated by skillhook init",
	}

	if exists(projectRoot, "go.mod") {
		logger.Debug().Msg("Detected Go module")
		doc.Skills = append(doc.Skills, Entry{
			ID: "go-dev-guidelines",
			Rule: types.SkillRule{
				Type:        types.RuleTypeDomain,
				Enforcement: types.EnforcementSuggest,
				Priority:    types.PriorityHigh,
				PromptTriggers: &types.PromptTriggers{
					Keywords:       []string{"goroutine", "channel", "go test", "interface"},
					IntentPatterns: []string{`(?i)\b(write|add|fix|refactor)\b.*\bgo\b`},
				},
				FileTriggers: &types.FileTriggers{
					PathPatterns: []string{"**/*.go"},
				},
			},
		})
	}

	if exists(projectRoot, "package.json") {
		logger.Debug().Msg("Detected Node project")
		doc.Skills = append(doc.Skills, Entry{
			ID: "backend-dev-guidelines",
			Rule: types.SkillRule{
				Type:        types.RuleTypeDomain,
				Enforcement: types.EnforcementSuggest,
				Priority:    types.PriorityHigh,
				PromptTriggers: &types.PromptTriggers{
					Keywords:       []string{"route", "controller", "endpoint", "middleware"},
					IntentPatterns: []string{`(?i)\b(add|create|implement)\b.*\b(api|route|endpoint)\b`},
				},
				FileTriggers: &types.FileTriggers{
					PathPatterns: []string{"src/**/*.ts", "src/**/*.js"},
				},
			},
		})
	}

	if exists(projectRoot, "tsconfig.json") && anyGlob(projectRoot, "src", "*.tsx") {
		logger.Debug().Msg("Detected React frontend")
		doc.Skills = append(doc.Skills, Entry{
			ID: "frontend-dev-guidelines",
			Rule: types.SkillRule{
				Type:        types.RuleTypeDomain,
				Enforcement: types.EnforcementSuggest,
				Priority:    types.PriorityMedium,
				PromptTriggers: &types.PromptTriggers{
					Keywords: []string{"component", "hook", "props", "jsx"},
				},
				FileTriggers: &types.FileTriggers{
					PathPatterns: []string{"src/**/*.tsx", "src/**/*.jsx"},
				},
			},
		})
	}

	// Guardrails apply everywhere.
	doc.Skills = append(doc.Skills, Entry{
		ID: "secrets-handling",
		Rule: types.SkillRule{
			Type:        types.RuleTypeGuardrail,
			Enforcement: types.EnforcementSuggest,
			Priority:    types.PriorityHigh,
			PromptTriggers: &types.PromptTriggers{
				Keywords: []string{"secret", "credential", "api key", "token", "password"},
			},
			FileTriggers: &types.FileTriggers{
				PathPatterns:    []string{"**/.env*", "**/*.pem"},
				ContentPatterns: []string{`(?i)(api[_-]?key|secret|password)\s*[:=]`},
			},
		},
	})

	return doc
}

func exists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}

// anyGlob reports whether dir contains at least one file matching
// pattern, at any depth.
func anyGlob(root, dir, pattern string) bool {
	found := false
	base := filepath.Join(root, dir)
	_ = filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil || found {
			return filepath.SkipAll
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
