package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/types"
)

// Entry is a single skill rule together with its identifier.
type Entry struct {
	ID   string
	Rule types.SkillRule
}

// Document is the parsed skill-rules.json document. Skills preserves
// the declaration order of the source JSON object.
type Document struct {
	Version     string
	Description string
	Skills      []Entry
}

// IsEmpty reports whether the document declares no skills.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Skills) == 0
}

// Lookup returns the rule for a skill id and whether it exists.
func (d *Document) Lookup(id string) (types.SkillRule, bool) {
	for _, e := range d.Skills {
		if e.ID == id {
			return e.Rule, true
		}
	}
	return types.SkillRule{}, false
}

// ParseDocument parses a skill-rules.json document, preserving the
// declaration order of the skills object. A structurally invalid
// document returns a CONFIG_PARSE error.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "rules document must be a JSON object")
	}

	doc := &Document{}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "malformed rules document")
		}

		switch key {
		case "version":
			if err := dec.Decode(&doc.Version); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid version field")
			}
		case "description":
			if err := dec.Decode(&doc.Description); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid description field")
			}
		case "skills":
			if err := parseSkills(dec, doc); err != nil {
				return nil, err
			}
		default:
			// Unknown top-level keys are ignored for forward compatibility.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid value for %q", key)
			}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "malformed rules document")
	}

	return doc, nil
}

// parseSkills walks the skills object token by token so that the order
// of skill ids in the source survives into doc.Skills.
func parseSkills(dec *json.Decoder, doc *Document) error {
	logger := logging.GetLogger("rules.parse")

	if err := expectDelim(dec, '{'); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "skills field must be a JSON object")
	}

	index := make(map[string]int)
	for dec.More() {
		id, err := readKey(dec)
		if err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "malformed skills object")
		}

		var rule types.SkillRule
		if err := dec.Decode(&rule); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid rule for skill %q", id)
		}

		if at, dup := index[id]; dup {
			// Mirror JSON object semantics: last declaration wins, but
			// the skill keeps its first declaration's order slot.
			logger.Warn().Str("skill", id).Msg("duplicate skill id, last declaration wins")
			doc.Skills[at].Rule = rule
			continue
		}
		index[id] = len(doc.Skills)
		doc.Skills = append(doc.Skills, Entry{ID: id, Rule: rule})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "malformed skills object")
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
