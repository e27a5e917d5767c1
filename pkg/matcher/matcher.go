// Package matcher implements skill activation: given a compiled
// RuleSet and one event, it computes the ordered set of skills to
// suggest.
//
// Evaluate is a pure function. It holds no state between calls, never
// merges information across events, and is safe to call concurrently
// on the same RuleSet.
package matcher

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/types"
)

// Evaluate computes the skills activated by one event. The result is
// deduplicated by skill id and sorted by priority descending, ties
// broken by declaration order in the rules document.
//
// An empty RuleSet or an event missing its required field (prompt
// text, file path) yields an empty result, never an error: suggestions
// are advisory and absence of a match is silent.
func Evaluate(rs *rules.RuleSet, event types.Event) []types.SkillMatch {
	if rs.IsEmpty() {
		return nil
	}

	var matches []types.SkillMatch
	switch ev := event.(type) {
	case types.PromptEvent:
		matches = evaluatePrompt(rs, ev)
	case types.FileEvent:
		matches = evaluateFile(rs, ev)
	default:
		return nil
	}

	return sortMatches(matches)
}

// evaluatePrompt tests each rule's prompt triggers against the
// submitted text. Keywords are tested before intent patterns, and the
// first hit short-circuits the rest of the rule's patterns.
func evaluatePrompt(rs *rules.RuleSet, ev types.PromptEvent) []types.SkillMatch {
	logger := logging.GetLogger("matcher.prompt")

	if strings.TrimSpace(ev.Text) == "" {
		logger.Debug().Msg("Empty prompt text, skipping evaluation")
		return nil
	}

	lower := strings.ToLower(ev.Text)

	var matches []types.SkillMatch
	for _, rule := range rs.Rules() {
		if !rule.HasPromptTriggers() {
			continue
		}

		kind, ok := matchPrompt(rule, ev.Text, lower)
		if !ok {
			continue
		}

		logger.Debug().
			Str("skill", rule.ID).
			Str("trigger", string(kind)).
			Msg("Prompt matched rule")
		matches = append(matches, types.SkillMatch{
			SkillID:  rule.ID,
			Trigger:  kind,
			Priority: rule.Rule.Priority,
		})
	}
	return matches
}

func matchPrompt(rule *rules.CompiledRule, text, lower string) (types.TriggerKind, bool) {
	for _, kw := range rule.Keywords {
		if strings.Contains(lower, kw) {
			return types.TriggerKeyword, true
		}
	}
	for _, re := range rule.IntentPatterns {
		if re.MatchString(text) {
			return types.TriggerIntent, true
		}
	}
	return "", false
}

// evaluateFile tests each rule's file triggers against the event. A
// path match is required; content patterns, when declared and content
// is supplied, must additionally match. Content absent means the path
// match alone suffices.
func evaluateFile(rs *rules.RuleSet, ev types.FileEvent) []types.SkillMatch {
	logger := logging.GetLogger("matcher.file")

	if strings.TrimSpace(ev.Path) == "" {
		logger.Debug().Msg("File event without path, skipping evaluation")
		return nil
	}

	path := filepath.ToSlash(ev.Path)

	var matches []types.SkillMatch
	for _, rule := range rs.Rules() {
		if !rule.HasFileTriggers() {
			continue
		}

		if !matchPath(rule, path) {
			continue
		}

		kind := types.TriggerPath
		if len(rule.ContentPatterns) > 0 && ev.Content != nil {
			if !matchContent(rule, *ev.Content) {
				continue
			}
			kind = types.TriggerContent
		}

		logger.Debug().
			Str("skill", rule.ID).
			Str("path", path).
			Str("trigger", string(kind)).
			Msg("File matched rule")
		matches = append(matches, types.SkillMatch{
			SkillID:  rule.ID,
			Trigger:  kind,
			Priority: rule.Rule.Priority,
		})
	}
	return matches
}

func matchPath(rule *rules.CompiledRule, path string) bool {
	for _, pattern := range rule.PathPatterns {
		// Patterns are validated at compile time, so Match cannot fail
		// here; it reports false for non-matches only.
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
		// A pattern without a slash matches against the base name, so
		// "*.tsx" works for nested files the way users expect.
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
				return true
			}
		}
	}
	return false
}

func matchContent(rule *rules.CompiledRule, content string) bool {
	for _, re := range rule.ContentPatterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

// sortMatches orders by priority rank descending and deduplicates by
// skill id, keeping the first occurrence. Rules are evaluated in
// declaration order and the sort is stable, so equal priorities keep
// document order.
func sortMatches(matches []types.SkillMatch) []types.SkillMatch {
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	deduped := matches[:0]
	for _, m := range matches {
		if seen[m.SkillID] {
			continue
		}
		seen[m.SkillID] = true
		deduped = append(deduped, m)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Priority.Rank() > deduped[j].Priority.Rank()
	})

	return deduped
}
