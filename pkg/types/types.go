// Package types defines the core types used throughout skillhook.
// This includes the rule document shapes (SkillRule, PromptTriggers,
// FileTriggers), the event variants fed to the matcher, and the
// SkillMatch results it produces.
package types

// Priority determines the ordering of simultaneously-matched skills.
// It has no effect on whether a rule matches.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns a numeric sort key for the priority (higher sorts first).
// Unknown priority strings rank below "low" rather than failing, since
// suggestions are advisory.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// RuleType categorizes a skill rule for display purposes.
type RuleType string

const (
	RuleTypeDomain    RuleType = "domain"
	RuleTypeGuardrail RuleType = "guardrail"
)

// Enforcement describes how a matched skill is surfaced. Only "suggest"
// is implemented: matches are advisory and never block the host.
type Enforcement string

const (
	EnforcementSuggest Enforcement = "suggest"
)

// PromptTriggers declares the conditions under which a submitted prompt
// activates a skill.
type PromptTriggers struct {
	// Keywords are case-insensitive literal substrings.
	Keywords []string `json:"keywords,omitempty"`

	// IntentPatterns are regular expressions tested in order against
	// the prompt text.
	IntentPatterns []string `json:"intentPatterns,omitempty"`
}

// FileTriggers declares the conditions under which a file change
// activates a skill.
type FileTriggers struct {
	// PathPatterns are glob patterns (doublestar syntax, ** supported)
	// matched against the event's file path.
	PathPatterns []string `json:"pathPatterns,omitempty"`

	// ContentPatterns are regular expressions matched against the
	// file's content when the host supplies it. A path match is
	// required first; content patterns then narrow it.
	ContentPatterns []string `json:"contentPatterns,omitempty"`
}

// SkillRule maps a skill to the triggers that activate it. A rule with
// neither trigger block is vacuous: it never matches, but it is not an
// error.
type SkillRule struct {
	Type           RuleType        `json:"type"`
	Enforcement    Enforcement     `json:"enforcement,omitempty"`
	Priority       Priority        `json:"priority"`
	PromptTriggers *PromptTriggers `json:"promptTriggers,omitempty"`
	FileTriggers   *FileTriggers   `json:"fileTriggers,omitempty"`
}

// HasTriggers reports whether the rule declares any trigger block at all.
func (r SkillRule) HasTriggers() bool {
	return r.PromptTriggers != nil || r.FileTriggers != nil
}

// TriggerKind identifies which trigger caused a match.
type TriggerKind string

const (
	TriggerKeyword TriggerKind = "keyword"
	TriggerIntent  TriggerKind = "intent"
	TriggerPath    TriggerKind = "path"
	TriggerContent TriggerKind = "content"
)

// SkillMatch is one entry in the matcher's output: a skill to suggest,
// the trigger kind that activated it, and the rule's priority.
type SkillMatch struct {
	SkillID  string      `json:"skillId"`
	Trigger  TriggerKind `json:"trigger"`
	Priority Priority    `json:"priority"`
}
