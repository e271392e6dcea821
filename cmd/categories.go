// ABOUTME: Category commands for the blogctl CLI
// ABOUTME: Lists, creates, and assigns categories to posts

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	assignPostID     string
	assignCategoryID string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Work with categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCategoriesList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCategoriesCreate(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a category to a post",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCategoriesAssign(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesCreateCmd)
	categoriesCmd.AddCommand(categoriesAssignCmd)

	categoriesAssignCmd.Flags().StringVar(&assignPostID, "post", "", "Post id (required)")
	categoriesAssignCmd.Flags().StringVar(&assignCategoryID, "category", "", "Category id (required)")
	categoriesAssignCmd.MarkFlagRequired("post")
	categoriesAssignCmd.MarkFlagRequired("category")
}

// runCategoriesList prints the category list
func runCategoriesList(ctx context.Context, w io.Writer) int {
	c := newClient()

	cats, err := c.ListCategories(ctx)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		return printJSON(w, cats)
	}

	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories.")
		return 0
	}
	for _, cat := range cats {
		fmt.Fprintf(w, "%-26s  %s\n", cat.ID, cat.Name)
	}
	return 0
}

// runCategoriesCreate creates a category
func runCategoriesCreate(ctx context.Context, w io.Writer, name string) int {
	c := newClient()

	cat, err := c.CreateCategory(ctx, name)
	if err != nil {
		return reportError(w, err)
	}

	id := ""
	if cat != nil {
		id = cat.ID
	}
	fmt.Fprintf(w, "Created category %s\n", id)
	return 0
}

// runCategoriesAssign attaches a category to a post
func runCategoriesAssign(ctx context.Context, w io.Writer) int {
	c := newClient()

	if err := c.AssignCategory(ctx, assignPostID, assignCategoryID); err != nil {
		return reportError(w, err)
	}

	fmt.Fprintf(w, "Assigned category %s to post %s\n", assignCategoryID, assignPostID)
	return 0
}
