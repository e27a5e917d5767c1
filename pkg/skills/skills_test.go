// Test Type: Unit Test
// Description: Tests for the skills package - document discovery and frontmatter parsing

package skills_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/testutil"
)

func TestParse(t *testing.T) {
	t.Run("with_frontmatter", func(t *testing.T) {
		s := skills.Parse(`---
name: backend-dev-guidelines
description: REST API conventions for this codebase
---

# Backend guidelines

Use the service layer.`, "SKILL.md")

		assert.Equal(t, "backend-dev-guidelines", s.Name)
		assert.Equal(t, "REST API conventions for this codebase", s.Description)
		assert.Equal(t, "# Backend guidelines\n\nUse the service layer.", s.Content)
	})

	t.Run("without_frontmatter", func(t *testing.T) {
		s := skills.Parse("Just markdown.", "SKILL.md")
		assert.Empty(t, s.Name)
		assert.Equal(t, "Just markdown.", s.Content)
	})

	t.Run("broken_frontmatter_keeps_body", func(t *testing.T) {
		s := skills.Parse("---\nname: [unterminated\n---\nBody", "SKILL.md")
		assert.Empty(t, s.Name)
		assert.Equal(t, "Body", s.Content)
	})
}

func TestLoadAll(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, userDir)

	// Directory layout, project level.
	testutil.WriteFile(t, projectDir, ".claude/skills/backend/SKILL.md",
		"---\nname: backend\ndescription: project version\n---\nproject body")
	// Flat file layout, project level, name from filename.
	testutil.WriteFile(t, projectDir, ".claude/skills/testing.md", "testing body")
	// User level: one shadowed, one unique.
	testutil.WriteFile(t, userDir, "skills/backend/SKILL.md",
		"---\nname: backend\ndescription: user version\n---\nuser body")
	testutil.WriteFile(t, userDir, "skills/git-workflow.md", "git body")

	p, err := paths.New(projectDir)
	require.NoError(t, err)

	all := skills.LoadAll(p)
	require.Len(t, all, 3)

	byName := make(map[string]skills.Skill)
	for _, s := range all {
		byName[s.Name] = s
	}
	assert.Equal(t, "project version", byName["backend"].Description)
	assert.Equal(t, "testing body", byName["testing"].Content)
	assert.Contains(t, byName, "git-workflow")
}

func TestFind(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	testutil.WriteFile(t, projectDir, ".claude/skills/known.md", "body")

	p, err := paths.New(projectDir)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		s, err := skills.Find(p, "known")
		require.NoError(t, err)
		assert.Equal(t, "body", s.Content)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := skills.Find(p, "unknown")
		require.Error(t, err)
		assert.True(t, skerrors.IsErrorCode(err, skerrors.ErrSkillNotFound))
	})
}
