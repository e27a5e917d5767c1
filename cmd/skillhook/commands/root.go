// Package commands assembles the skillhook CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/internal/version"
	"github.com/dotskills/skillhook/pkg/config"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		rulesFile string
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "skillhook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&root, "root", "", MsgFlagRoot)

	rootCmd.AddCommand(newHookCmd(&rulesFile, &root))
	rootCmd.AddCommand(newCheckCmd(&rulesFile, &root))
	rootCmd.AddCommand(newListCmd(&rulesFile, &root))
	rootCmd.AddCommand(newShowCmd(&root))
	rootCmd.AddCommand(newValidateCmd(&rulesFile, &root))
	rootCmd.AddCommand(newInitCmd(&root))
	rootCmd.AddCommand(newWatchCmd(&rulesFile, &root))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("skillhook version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// cmdContext bundles everything a command needs for one invocation.
type cmdContext struct {
	Paths    *paths.Paths
	Settings *config.Settings
	RuleSet  *rules.RuleSet
	RuleErrs []rules.RuleError
	// LoadErrs holds configuration errors from rules loading. Matching
	// commands fail open on these; validate reports them.
	LoadErrs []error
}

// newCmdContext resolves paths, settings, and the compiled rule set.
// Rules-document configuration errors do not fail the call: matching
// is best-effort and proceeds with whatever loaded.
func newCmdContext(rulesFile, root string) (*cmdContext, error) {
	p, err := paths.New(root)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(p)
	if err != nil {
		return nil, err
	}

	if settings.Output.Color != "" && !style.ColorEnabled(settings.Output.Color, os.Stdout) {
		style.Disable()
	}

	if rulesFile == "" {
		rulesFile = settings.Paths.RulesFile
	}

	var (
		doc      *rules.Document
		loadErrs []error
	)
	if rulesFile != "" {
		doc, err = rules.Load(rulesFile)
		if err != nil {
			loadErrs = append(loadErrs, err)
		}
	} else {
		doc, loadErrs = rules.LoadLayered(p)
	}

	rs, ruleErrs := rules.Compile(doc)

	for _, e := range loadErrs {
		log.Warn().Err(e).Msg("Rules document error, matching proceeds without it")
	}

	return &cmdContext{
		Paths:    p,
		Settings: settings,
		RuleSet:  rs,
		RuleErrs: ruleErrs,
		LoadErrs: loadErrs,
	}, nil
}

// capMatches applies the configured suggestion limit.
func (c *cmdContext) capMatches(n int) int {
	max := c.Settings.Matching.MaxSuggestions
	if max > 0 && n > max {
		return max
	}
	return n
}
