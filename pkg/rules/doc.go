// Package rules loads, validates, and compiles the skill-rules.json
// document that drives skill activation.
//
// The document maps skill identifiers to SkillRules. Declaration order
// matters: it is the tie-break key when equally-prioritized skills
// match, so parsing goes through a token-level JSON decoder that
// preserves object key order instead of a plain map.
//
// Compilation happens once per load. Keywords are lowercased, intent
// and content patterns are compiled with regexp, and path patterns are
// validated with doublestar. A pattern that fails to compile disables
// only its own rule and is reported as a RuleError; the rest of the
// document still evaluates. Only a structurally broken document (bad
// JSON, wrong top-level shape, unreadable file) escalates to the
// caller, and callers fail open with an empty RuleSet.
package rules
