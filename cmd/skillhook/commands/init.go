package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/rules"
	"github.com/dotskills/skillhook/pkg/style"
)

func newInitCmd(root *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(*root, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing rules file without asking")

	return cmd
}

func runInit(root string, force bool) error {
	p, err := paths.New(root)
	if err != nil {
		return err
	}

	target := p.ProjectRulesFile()
	if _, err := os.Stat(target); err == nil && !force {
		fmt.Printf("%s already exists. Overwrite? [y/N] ", target)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	doc := rules.Starter(p.ProjectRoot())
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return err
	}

	fmt.Printf("%s wrote %s with %d rules\n",
		style.SuccessStyle.Render("ok:"), target, len(doc.Skills))
	fmt.Println(style.MutedStyle.Render("Edit the file to match your project's skills, then run: skillhook validate"))
	return nil
}
