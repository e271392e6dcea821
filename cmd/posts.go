// ABOUTME: Post commands for the blogctl CLI
// ABOUTME: Lists, reads, creates, updates, and deletes posts

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/session"
)

var (
	postTitle    string
	postContent  string
	postImage    string
	postStatus   string
	postCategory string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Work with posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published posts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <post-id>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsGet(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var postsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own posts, drafts included",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsMine(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Long: `Create a post with the given title and content.

Content may be given inline with --content or piped on stdin when the
flag is omitted.

Exit codes:
  0 - Post created
  1 - Request rejected (validation, authentication)
  2 - Error (connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsCreate(ctx, os.Stdout, os.Stdin)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <post-id>",
	Short: "Update a post you authored",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsUpdate(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post you authored",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPostsDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsGetCmd)
	postsCmd.AddCommand(postsMineCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsUpdateCmd)
	postsCmd.AddCommand(postsDeleteCmd)

	for _, c := range []*cobra.Command{postsCreateCmd, postsUpdateCmd} {
		c.Flags().StringVar(&postTitle, "title", "", "Post title")
		c.Flags().StringVar(&postContent, "content", "", "Post body (stdin when omitted on create)")
		c.Flags().StringVar(&postImage, "image", "", "Featured image URL")
		c.Flags().StringVar(&postStatus, "status", client.StatusPublished, "Post status: draft or published")
		c.Flags().StringVar(&postCategory, "category", "", "Category id to assign")
	}
	postsCreateCmd.MarkFlagRequired("title")
}

// runPostsList prints the public feed
func runPostsList(ctx context.Context, w io.Writer) int {
	c := newClient()

	posts, err := c.ListPosts(ctx)
	if err != nil {
		return reportError(w, err)
	}

	return printPosts(w, posts)
}

// runPostsGet prints one post with its comments
func runPostsGet(ctx context.Context, w io.Writer, id string) int {
	c := newClient()

	post, err := c.GetPost(ctx, id)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		return printJSON(w, post)
	}

	author := "unknown"
	if post.Author != nil && post.Author.Name != "" {
		author = post.Author.Name
	}
	fmt.Fprintf(w, "%s\n", post.Title)
	fmt.Fprintf(w, "by %s · %s · %d likes · %d comments\n\n", author,
		post.CreatedAt.Format("Jan 2, 2006"), len(post.Likes), len(post.Comments))
	fmt.Fprintln(w, post.Content)
	for _, cm := range post.Comments {
		name := cm.User.Name
		if name == "" {
			name = "Anonymous"
		}
		fmt.Fprintf(w, "\n[%s] %s\n", name, cm.Content)
	}
	return 0
}

// runPostsMine lists the posts authored by the logged-in user
func runPostsMine(ctx context.Context, w io.Writer) int {
	s := currentSession()
	if !s.Authenticated {
		fmt.Fprintln(w, "Error: not logged in")
		return 1
	}

	c := newClient()
	posts, err := c.AuthorPosts(ctx, s.Identity.ID)
	if err != nil {
		return reportError(w, err)
	}

	return printPosts(w, posts)
}

// runPostsCreate creates a post, reading the body from stdin when the
// content flag is omitted
func runPostsCreate(ctx context.Context, w io.Writer, stdin io.Reader) int {
	s := currentSession()
	if !s.Authenticated {
		fmt.Fprintln(w, "Error: not logged in")
		return 1
	}

	content := postContent
	if content == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		content = strings.TrimSpace(string(raw))
	}
	if content == "" {
		fmt.Fprintln(w, "Error: post content is empty")
		return 1
	}
	if postStatus != client.StatusDraft && postStatus != client.StatusPublished {
		fmt.Fprintln(w, "Error: --status must be draft or published")
		return 1
	}

	c := newClient()
	input := client.PostInput{
		Title:       postTitle,
		Content:     content,
		AuthorID:    s.Identity.ID,
		FeaturedImg: postImage,
		Status:      postStatus,
	}
	created, err := c.CreatePost(ctx, input)
	if err != nil {
		return reportError(w, err)
	}

	if postCategory != "" && created != nil && created.ID != "" {
		if err := c.AssignCategory(ctx, created.ID, postCategory); err != nil {
			return reportError(w, err)
		}
	}

	id := ""
	if created != nil {
		id = created.ID
	}
	fmt.Fprintf(w, "Created post %s\n", id)
	return 0
}

// runPostsUpdate sends the changed fields for a post
func runPostsUpdate(ctx context.Context, w io.Writer, id string) int {
	s := currentSession()
	if !s.Authenticated {
		fmt.Fprintln(w, "Error: not logged in")
		return 1
	}

	c := newClient()
	current, err := c.GetPost(ctx, id)
	if err != nil {
		return reportError(w, err)
	}

	input := client.PostInput{
		Title:       current.Title,
		Content:     current.Content,
		AuthorID:    s.Identity.ID,
		FeaturedImg: current.FeaturedImg,
		Status:      current.Status,
		CategoryID:  postCategory,
	}
	if postTitle != "" {
		input.Title = postTitle
	}
	if postContent != "" {
		input.Content = postContent
	}
	if postImage != "" {
		input.FeaturedImg = postImage
	}
	if postStatus != "" {
		if postStatus != client.StatusDraft && postStatus != client.StatusPublished {
			fmt.Fprintln(w, "Error: --status must be draft or published")
			return 1
		}
		input.Status = postStatus
	}

	if _, err := c.UpdatePost(ctx, id, input); err != nil {
		return reportError(w, err)
	}

	fmt.Fprintf(w, "Updated post %s\n", id)
	return 0
}

// runPostsDelete deletes a post
func runPostsDelete(ctx context.Context, w io.Writer, id string) int {
	c := newClient()

	if err := c.DeletePost(ctx, id); err != nil {
		return reportError(w, err)
	}

	fmt.Fprintf(w, "Deleted post %s\n", id)
	return 0
}

// currentSession derives the session from the stored token
func currentSession() session.Session {
	tok, _ := tokenStore().Get()
	return session.Derive(tok)
}

// printPosts renders a post list as JSON or a table
func printPosts(w io.Writer, posts []client.Post) int {
	if IsJSONOutput() {
		return printJSON(w, posts)
	}

	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return 0
	}
	for _, p := range posts {
		author := "unknown"
		if p.Author != nil && p.Author.Name != "" {
			author = p.Author.Name
		}
		fmt.Fprintf(w, "%-26s  %-10s  %-20s  %3d likes  %3d comments\n",
			p.ID, p.Status, author, len(p.Likes), len(p.Comments))
	}
	return 0
}

// printJSON writes the value as indented JSON
func printJSON(w io.Writer, v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, string(out))
	return 0
}
