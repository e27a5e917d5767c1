// Test Type: Unit Test
// Description: Tests for the types package - priority ranking and rule shape helpers

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotskills/skillhook/pkg/types"
)

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, types.PriorityHigh.Rank(), types.PriorityMedium.Rank())
	assert.Greater(t, types.PriorityMedium.Rank(), types.PriorityLow.Rank())
	assert.Greater(t, types.PriorityLow.Rank(), types.Priority("urgent").Rank())
	assert.Equal(t, 0, types.Priority("").Rank())
}

func TestHasTriggers(t *testing.T) {
	assert.False(t, types.SkillRule{}.HasTriggers())
	assert.True(t, types.SkillRule{PromptTriggers: &types.PromptTriggers{}}.HasTriggers())
	assert.True(t, types.SkillRule{FileTriggers: &types.FileTriggers{}}.HasTriggers())
}

func TestEventKinds(t *testing.T) {
	assert.Equal(t, types.EventPrompt, types.PromptEvent{Text: "x"}.Kind())
	assert.Equal(t, types.EventFile, types.FileEvent{Path: "x"}.Kind())
}

func TestFileEventWithContent(t *testing.T) {
	ev := types.FileEvent{Path: "a.go"}
	assert.Nil(t, ev.Content)

	withContent := ev.WithContent("package a")
	assert.Nil(t, ev.Content) // original untouched
	assert.Equal(t, "package a", *withContent.Content)
}
