// ABOUTME: Browse command for the blogctl CLI
// ABOUTME: Launches the interactive terminal reader

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blogify/blogctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse Blogify interactively",
	Long: `Browse Blogify in an interactive terminal session.

Read the feed, open posts, like, favorite, and comment, log in and out,
and manage your own posts from the dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(newClient(), tokenStore()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
