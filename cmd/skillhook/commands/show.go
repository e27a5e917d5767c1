package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotskills/skillhook/pkg/paths"
	"github.com/dotskills/skillhook/pkg/skills"
	"github.com/dotskills/skillhook/pkg/style"
)

func newShowCmd(root *string) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <skill>",
		Short: MsgShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(*root, args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw markdown without rendering")

	return cmd
}

func runShow(root, name string, raw bool) error {
	p, err := paths.New(root)
	if err != nil {
		return err
	}

	skill, err := skills.Find(p, name)
	if err != nil {
		return err
	}

	if raw {
		fmt.Println(skill.Content)
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	fmt.Print(style.RenderMarkdown(skill.Content, width))
	return nil
}
