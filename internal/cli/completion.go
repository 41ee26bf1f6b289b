package cli

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/store"
)

// completionCommand prints shell completions, including board ids
// suggested by the dynamic completion of board arguments.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridboard.

To load completions:

Bash:
  $ source <(gridboard completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ gridboard completion bash > /etc/bash_completion.d/gridboard
  # macOS:
  $ gridboard completion bash > $(brew --prefix)/etc/bash_completion.d/gridboard

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ gridboard completion zsh > "${fpath[1]}/_gridboard"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ gridboard completion fish | source

  # To load completions for each session, execute once:
  $ gridboard completion fish > ~/.config/fish/completions/gridboard.fish

PowerShell:
  PS> gridboard completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> gridboard completion powershell > gridboard.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeBoards suggests stored board ids for the first positional argument.
func (c *CLI) completeBoards(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := store.Open(cmd.Context(), c.cfg.Store)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	entries, err := s.List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids := lo.FilterMap(entries, func(e store.Entry, _ int) (string, bool) {
		return e.ID, strings.HasPrefix(e.ID, toComplete)
	})
	return ids, cobra.ShellCompDirectiveNoFileComp
}
