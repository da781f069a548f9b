package plucky

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plucky/plucky/internal/engine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List available pattern categories",
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range engine.Categories() {
				fmt.Println(name)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
