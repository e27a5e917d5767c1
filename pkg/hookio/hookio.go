// Package hookio adapts the assistant host's hook protocol to the
// matcher's event types.
//
// The host invokes skillhook once per event and writes a JSON payload
// to stdin: UserPromptSubmit carries the submitted prompt,
// PostToolUse carries the tool name and its file path input. The
// response goes to stdout as hookSpecificOutput JSON whose
// additionalContext lists the suggested skills. Everything here is
// fail-open: an unparseable payload or an unknown event name produces
// empty output, never a blocking failure, because suggestions are
// advisory.
package hookio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dotskills/skillhook/pkg/errors"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/types"
)

// Hook event names as the host spells them.
const (
	EventUserPromptSubmit = "UserPromptSubmit"
	EventPostToolUse      = "PostToolUse"
)

// maxContentBytes bounds how much file content is read for content
// pattern matching. Rules target imports and declarations, which live
// near the top of a file.
const maxContentBytes = 256 * 1024

// Payload is the JSON document the host writes to stdin.
type Payload struct {
	SessionID      string     `json:"session_id,omitempty"`
	TranscriptPath string     `json:"transcript_path,omitempty"`
	CWD            string     `json:"cwd,omitempty"`
	HookEventName  string     `json:"hook_event_name"`
	Prompt         string     `json:"prompt,omitempty"`
	ToolName       string     `json:"tool_name,omitempty"`
	ToolInput      *ToolInput `json:"tool_input,omitempty"`
}

// ToolInput is the subset of tool input fields skill activation needs.
type ToolInput struct {
	FilePath string `json:"file_path,omitempty"`
	Content  string `json:"content,omitempty"`
}

// FileReader supplies file content for file events. It exists so tests
// and the watch command can substitute sources other than the disk.
type FileReader func(path string) (string, error)

// ReadPayload decodes the host payload from r.
func ReadPayload(r io.Reader) (*Payload, error) {
	var p Payload
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, errors.ErrEventInvalid, "cannot decode hook payload")
	}
	return &p, nil
}

// Event maps a host payload to a matcher event. The second return is
// false when the payload carries no evaluatable event (unknown event
// name, missing prompt or path), which callers treat as "nothing to
// suggest", not an error.
func (p *Payload) Event(readFile FileReader) (types.Event, bool) {
	logger := logging.GetLogger("hookio")

	switch p.HookEventName {
	case EventUserPromptSubmit:
		if strings.TrimSpace(p.Prompt) == "" {
			logger.Debug().Msg("UserPromptSubmit without prompt text")
			return nil, false
		}
		return types.PromptEvent{Text: p.Prompt}, true

	case EventPostToolUse:
		if p.ToolInput == nil || p.ToolInput.FilePath == "" {
			logger.Debug().Str("tool", p.ToolName).Msg("PostToolUse without file path")
			return nil, false
		}
		ev := types.FileEvent{Path: p.ToolInput.FilePath}
		// PostToolUse fires after the write, so the on-disk content is
		// current. Inline content (Write tool) avoids the extra read.
		if p.ToolInput.Content != "" {
			return ev.WithContent(p.ToolInput.Content), true
		}
		if readFile != nil {
			if content, err := readFile(p.ToolInput.FilePath); err == nil {
				return ev.WithContent(content), true
			}
		}
		return ev, true

	default:
		logger.Debug().Str("event", p.HookEventName).Msg("Unknown hook event")
		return nil, false
	}
}

// Response is the hook output document the host reads from stdout.
type Response struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries context back into the conversation.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// WriteResponse emits the hook response for the given matches. No
// matches means no output at all: silence, not an empty suggestion
// block.
func WriteResponse(w io.Writer, eventName string, matches []types.SkillMatch, docs []skills.Skill) error {
	if len(matches) == 0 {
		return nil
	}

	resp := Response{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:     eventName,
			AdditionalContext: FormatContext(matches, docs),
		},
	}
	return json.NewEncoder(w).Encode(resp)
}

// FormatContext builds the advisory text injected into the
// conversation: one line per suggested skill with its description and
// document path when known.
func FormatContext(matches []types.SkillMatch, docs []skills.Skill) string {
	byName := make(map[string]skills.Skill, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}

	var b strings.Builder
	b.WriteString("The following skills may be relevant to this task. Consult them before proceeding:\n")
	for _, m := range matches {
		if d, ok := byName[m.SkillID]; ok {
			fmt.Fprintf(&b, "- %s (%s): %s\n", m.SkillID, d.FilePath, d.Description)
		} else {
			fmt.Fprintf(&b, "- %s\n", m.SkillID)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
