package plucky

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionGens = map[string]func(*cobra.Command) error{
	"bash": func(c *cobra.Command) error { return c.GenBashCompletion(os.Stdout) },
	"zsh":  func(c *cobra.Command) error { return c.GenZshCompletion(os.Stdout) },
	"fish": func(c *cobra.Command) error { return c.GenFishCompletion(os.Stdout, true) },
	"powershell": func(c *cobra.Command) error {
		return c.GenPowerShellCompletionWithDesc(os.Stdout)
	},
}

func init() {
	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Print a completion script for the given shell",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			gen, ok := completionGens[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
			return gen(rootCmd)
		},
		Example: `  source <(plucky completion bash)
  plucky completion zsh > "${fpath[1]}/_plucky"
  plucky completion fish | source`,
	}
	rootCmd.AddCommand(cmd)
}
