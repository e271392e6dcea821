// ABOUTME: Reaction commands for the blogctl CLI
// ABOUTME: Toggles likes and favorites and posts comments

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blogify/blogctl/internal/optimistic"
)

var commentMessage string

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle your like on a post",
	Long: `Toggle your like on a post. Liking a post you already like
removes the like.

Exit codes:
  0 - Toggled
  1 - Request rejected (authentication, missing post)
  2 - Error (connectivity)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLike(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <post-id>",
	Short: "Toggle a post in your favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runFavorite(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runComment(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(commentCmd)

	commentCmd.Flags().StringVar(&commentMessage, "message", "", "Comment text (required)")
	commentCmd.MarkFlagRequired("message")
}

// runLike toggles the like and reports the server's answer
func runLike(ctx context.Context, w io.Writer, postID string) int {
	c := newClient()

	resp, err := c.ToggleLike(ctx, postID)
	if err != nil {
		return reportError(w, err)
	}

	msg := resp.Message
	if msg == "" {
		msg = "Like toggled"
	}
	fmt.Fprintln(w, msg)
	return 0
}

// runFavorite toggles the favorite and reports the server's answer
func runFavorite(ctx context.Context, w io.Writer, postID string) int {
	c := newClient()

	resp, err := c.ToggleFavorite(ctx, postID)
	if err != nil {
		return reportError(w, err)
	}

	msg := resp.Message
	if msg == "" {
		msg = "Favorite toggled"
	}
	fmt.Fprintln(w, msg)
	return 0
}

// runComment validates locally and posts the comment
func runComment(ctx context.Context, w io.Writer, postID string) int {
	content, err := optimistic.ValidateComment(commentMessage)
	if err != nil {
		fmt.Fprintln(w, "Error: comment cannot be empty")
		return 1
	}

	c := newClient()
	if _, err := c.CreateComment(ctx, postID, content); err != nil {
		return reportError(w, err)
	}

	fmt.Fprintln(w, "Comment posted")
	return 0
}
