// ABOUTME: Root command for the blogctl CLI
// ABOUTME: Handles global flags, env configuration, and shared construction

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/token"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:3000"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Terminal client for the Blogify platform",
	Long: `blogctl is a terminal client for the Blogify blogging platform.

It reads and writes posts, comments, likes, and favorites against a
Blogify API server, and ships an interactive browser (blogctl browse).

Environment Variables:
  BLOGIFY_API_URL  Blogify API URL (default: http://localhost:3000)`,
}

// Execute runs the root command
func Execute() error {
	// A .env in the working directory supplies BLOGIFY_API_URL during
	// development; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Blogify API URL (overrides BLOGIFY_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("BLOGIFY_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// tokenStore opens the token store in the user config directory
func tokenStore() *token.Store {
	return token.New(token.DefaultConfigDir())
}

// newClient builds an API client backed by the persistent token store
func newClient() *client.Client {
	return client.New(GetAPIURL(), tokenStore())
}

// exitCodeFor maps an API failure to a process exit code: 1 for requests
// the server rejected, 2 for errors that prevented an answer.
func exitCodeFor(err error) int {
	switch {
	case client.IsKind(err, client.KindValidation),
		client.IsKind(err, client.KindForbidden),
		client.IsKind(err, client.KindNotFound),
		client.IsKind(err, client.KindUnauthenticated),
		client.IsKind(err, client.KindTokenRejected):
		return 1
	default:
		return 2
	}
}

// reportError writes a failure message and returns its exit code
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitCodeFor(err)
}
