package plucky

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plucky/plucky/internal/update"
)

func init() {
	var check bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update plucky to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if check {
				latest, newer, err := update.Check(version, false)
				if err != nil {
					return err
				}
				if newer {
					fmt.Printf("new version available: v%s (current v%s)\n", latest, version)
				} else {
					fmt.Println("plucky is up to date")
				}
				return nil
			}
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Fprintln(os.Stderr, "updated to latest release")
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "only check for a newer release")
	rootCmd.AddCommand(cmd)
}
