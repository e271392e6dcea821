// ABOUTME: Account commands for the blogctl CLI
// ABOUTME: Covers login, registration, logout, and session inspection

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blogify/blogctl/internal/session"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	Long: `Log in to the Blogify API and store the returned token.

The token is written to the user config directory and attached to
subsequent requests until logout.

Exit codes:
  0 - Logged in
  1 - Credentials rejected
  2 - Error (connectivity, storage)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Blogify account",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the stored token",
	Long: `Show the identity decoded from the stored session token.

The identity is read locally from the token payload; no request is made
and no signature is checked. Only the server's acceptance of a request
proves the session is still valid.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name (required)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (required)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}

// runLogin performs the login and persists the token
func runLogin(ctx context.Context, w io.Writer) int {
	c := newClient()

	tok, err := c.Login(ctx, loginEmail, loginPassword)
	if err != nil {
		return reportError(w, err)
	}

	if err := tokenStore().Set(tok); err != nil {
		fmt.Fprintf(w, "Error: could not store token: %v\n", err)
		return 2
	}

	s := session.Derive(tok)
	who := loginEmail
	if s.Identity != nil && s.Identity.Name != "" {
		who = s.Identity.Name
	}
	fmt.Fprintf(w, "Logged in as %s\n", who)
	return 0
}

// runRegister creates the account; it does not log in
func runRegister(ctx context.Context, w io.Writer) int {
	c := newClient()

	if err := c.Register(ctx, registerName, registerEmail, registerPassword); err != nil {
		return reportError(w, err)
	}

	fmt.Fprintf(w, "Account created for %s. Run 'blogctl login' to sign in.\n", registerEmail)
	return 0
}

// runLogout clears the stored token
func runLogout(w io.Writer) int {
	if err := tokenStore().Clear(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Logged out")
	return 0
}

// runWhoami prints the locally decoded identity
func runWhoami(w io.Writer) int {
	tok, ok := tokenStore().Get()
	if !ok {
		fmt.Fprintln(w, "Not logged in")
		return 1
	}

	s := session.Derive(tok)
	if !s.Authenticated {
		fmt.Fprintln(w, "Stored token is not readable; run 'blogctl login' again")
		return 1
	}

	if IsJSONOutput() {
		out, err := json.MarshalIndent(s.Identity, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, string(out))
		return 0
	}

	fmt.Fprintf(w, "ID:    %s\n", s.Identity.ID)
	fmt.Fprintf(w, "Name:  %s\n", s.Identity.Name)
	fmt.Fprintf(w, "Email: %s\n", s.Identity.Email)
	return 0
}
