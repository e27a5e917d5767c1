package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/types"
)

// RuleError reports a single rule whose pattern failed to compile. The
// rule is disabled; the rest of the RuleSet is unaffected.
type RuleError struct {
	SkillID string
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e RuleError) Error() string {
	return fmt.Sprintf("skill %q: pattern %q: %v", e.SkillID, e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e RuleError) Unwrap() error { return e.Err }

// CompiledRule is a SkillRule with its patterns compiled for matching.
// Patterns compile once at load time so that per-event evaluation is
// bounded and pattern errors surface eagerly.
type CompiledRule struct {
	ID   string
	Rule types.SkillRule

	// Order is the rule's declaration position, used as the sort
	// tie-break among equal priorities.
	Order int

	// Keywords are pre-lowercased for case-insensitive matching.
	Keywords        []string
	IntentPatterns  []*regexp.Regexp
	PathPatterns    []string
	ContentPatterns []*regexp.Regexp
}

// HasPromptTriggers reports whether the rule can match prompt events.
func (r *CompiledRule) HasPromptTriggers() bool {
	return len(r.Keywords) > 0 || len(r.IntentPatterns) > 0
}

// HasFileTriggers reports whether the rule can match file events.
func (r *CompiledRule) HasFileTriggers() bool {
	return len(r.PathPatterns) > 0
}

// RuleSet is a compiled, immutable rule collection ready for
// evaluation. It is safe for concurrent use: evaluation only reads.
type RuleSet struct {
	rules []*CompiledRule
}

// Rules returns the compiled rules in declaration order.
func (rs *RuleSet) Rules() []*CompiledRule {
	if rs == nil {
		return nil
	}
	return rs.rules
}

// Len returns the number of enabled rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// IsEmpty reports whether the RuleSet has no enabled rules.
func (rs *RuleSet) IsEmpty() bool { return rs.Len() == 0 }

// Compile turns a parsed document into a RuleSet. Rules whose patterns
// fail to compile are dropped and reported in the returned RuleError
// slice; compilation itself never fails.
func Compile(doc *Document) (*RuleSet, []RuleError) {
	logger := logging.GetLogger("rules.compile")

	rs := &RuleSet{}
	var ruleErrs []RuleError

	if doc == nil {
		return rs, nil
	}

	for i, entry := range doc.Skills {
		compiled, err := compileRule(entry, i)
		if err != nil {
			logger.Warn().
				Str("skill", err.SkillID).
				Str("pattern", err.Pattern).
				Err(err.Err).
				Msg("Rule disabled: pattern failed to compile")
			ruleErrs = append(ruleErrs, *err)
			continue
		}

		if entry.Rule.Priority.Rank() == 0 {
			logger.Warn().
				Str("skill", entry.ID).
				Str("priority", string(entry.Rule.Priority)).
				Msg("Unknown priority, rule will sort last")
		}

		rs.rules = append(rs.rules, compiled)
	}

	logger.Debug().
		Int("rules", len(rs.rules)).
		Int("errors", len(ruleErrs)).
		Msg("Compiled rule set")

	return rs, ruleErrs
}

// compileRule compiles one entry. The first bad pattern disables the
// whole rule: a rule that is half-broken is a configuration mistake,
// not something to silently half-apply.
func compileRule(entry Entry, order int) (*CompiledRule, *RuleError) {
	compiled := &CompiledRule{
		ID:    entry.ID,
		Rule:  entry.Rule,
		Order: order,
	}

	if pt := entry.Rule.PromptTriggers; pt != nil {
		for _, kw := range pt.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			compiled.Keywords = append(compiled.Keywords, kw)
		}
		for _, pat := range pt.IntentPatterns {
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, &RuleError{
					SkillID: entry.ID,
					Pattern: pat,
					Err:     errors.Wrap(err, errors.ErrRulePattern, "invalid intent pattern"),
				}
			}
			compiled.IntentPatterns = append(compiled.IntentPatterns, re)
		}
	}

	if ft := entry.Rule.FileTriggers; ft != nil {
		for _, pat := range ft.PathPatterns {
			if !doublestar.ValidatePattern(pat) {
				return nil, &RuleError{
					SkillID: entry.ID,
					Pattern: pat,
					Err:     errors.New(errors.ErrRuleGlob, "invalid path glob"),
				}
			}
			compiled.PathPatterns = append(compiled.PathPatterns, pat)
		}
		for _, pat := range ft.ContentPatterns {
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, &RuleError{
					SkillID: entry.ID,
					Pattern: pat,
					Err:     errors.Wrap(err, errors.ErrRulePattern, "invalid content pattern"),
				}
			}
			compiled.ContentPatterns = append(compiled.ContentPatterns, re)
		}
	}

	return compiled, nil
}
