package commands

// Message constants
const (
	MsgRootShort = "Suggest coding-guideline skills from prompts and file changes"
	MsgRootLong  = `skillhook matches a declarative skill-rules.json document against
events from an AI coding assistant (a submitted prompt, a changed file)
and suggests which guideline skills apply.

Suggestions are advisory: skillhook never blocks the host, and events
that match nothing produce no output at all.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRules   = "Rules file to use instead of project/user discovery"
	MsgFlagRoot    = "Project root (default: discovered from working directory)"

	MsgHookShort = "Run as an assistant hook, reading the event payload from stdin"
	MsgHookLong  = `Reads the host's hook JSON payload from stdin, evaluates the rules
document, and writes a hookSpecificOutput response to stdout. Supported
events: UserPromptSubmit and PostToolUse. Unknown events and events
that match nothing exit 0 with no output.`

	MsgCheckShort = "Evaluate a prompt or file against the rules document"
	MsgCheckLong  = `Evaluates one ad-hoc event and prints the matched skills. Exactly one
of --prompt or --file must be given. With --file, the file's content is
read from disk when it exists so content patterns apply.`

	MsgListShort = "List rules and their skill documents"

	MsgShowShort = "Render a skill document in the terminal"

	MsgValidateShort = "Check the rules document for errors"
	MsgValidateLong  = `Loads the rules document, reports patterns that fail to compile, and
flags rules whose skill has no document. Pattern errors are warnings
(the rule is skipped at match time); only a structurally invalid
document fails validation.`

	MsgInitShort = "Generate a starter skill-rules.json for this project"

	MsgWatchShort = "Watch the project tree and suggest skills on file changes"
)
