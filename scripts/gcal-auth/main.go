// Command gcal-auth runs the one-time browser consent for Google Calendar and
// Google Tasks and writes the resulting token where the server and CLI read
// it (google.token_path).
//
//	go run ./scripts/gcal-auth [--credentials path] [--token path]
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"devflow/config"
	"devflow/pkg/googleauth"
)

// consentState is echoed back by Google; the code is pasted by hand, so it
// only has to be non-empty.
const consentState = "devflow-gcal-auth"

var (
	credentialsPath string
	tokenPath       string
)

var rootCmd = &cobra.Command{
	Use:           "gcal-auth",
	Short:         "Authorize DevFlow for Google Calendar and Tasks",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return authorize(cmd.Context(), cmd)
	},
}

func init() {
	defaults := config.GoogleConfig{CredentialsPath: "credentials.json", TokenPath: googleauth.DefaultTokenPath}
	if cfg, err := config.Load(); err == nil {
		defaults = cfg.Google
	}
	rootCmd.Flags().StringVar(&credentialsPath, "credentials", defaults.CredentialsPath, "OAuth Desktop client secrets file")
	rootCmd.Flags().StringVar(&tokenPath, "token", defaults.TokenPath, "where to write the user token")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "gcal-auth:", err)
		os.Exit(1)
	}
}

func authorize(ctx context.Context, cmd *cobra.Command) error {
	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	oc, err := googleauth.InstalledAppConfig(raw)
	if err != nil {
		return fmt.Errorf("%s is not an OAuth Desktop client secrets file: %w", credentialsPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "1. Open this URL and sign in:\n\n%s\n\n", oc.AuthCodeURL(consentState, oauth2.AccessTypeOffline))
	fmt.Fprint(out, "2. Paste the authorization code: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	code := strings.TrimSpace(line)
	if code == "" {
		return errors.Join(errors.New("no authorization code entered"), err)
	}

	tok, err := oc.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	if err := googleauth.SaveToken(tokenPath, tok); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
	return nil
}
