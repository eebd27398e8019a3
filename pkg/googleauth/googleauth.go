// Package googleauth builds OAuth2 token sources shared by the Google
// Calendar and Google Tasks clients.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/tasks/v1"
)

// DefaultTokenPath is where scripts/gcal-auth writes the user token.
const DefaultTokenPath = "token.json"

// Scopes covers every Google API DevFlow touches, so one consent grants both.
var Scopes = []string{calendar.CalendarScope, tasks.TasksScope}

// ErrMissingToken means installed-app credentials were given but the
// one-time browser consent has not produced a token file yet.
var ErrMissingToken = errors.New("google credentials are OAuth Desktop type but no token file found: run scripts/gcal-auth first")

// TokenSourceFromFile reads credentials from disk and delegates to TokenSourceFromJSON.
func TokenSourceFromFile(ctx context.Context, credentialsPath, tokenPath string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, tokenPath)
}

// TokenSourceFromJSON accepts a service-account key or installed-app
// client secrets. The latter needs a stored token at tokenPath.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, Scopes...)
	if err == nil {
		return jwtConfig.TokenSource(ctx), nil
	}

	oauthConfig, cfgErr := InstalledAppConfig(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	return oauthConfig.TokenSource(ctx, tok), nil
}

// InstalledAppConfig parses OAuth Desktop client secrets with DevFlow's scopes.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return google.ConfigFromJSON(credentialsJSON, Scopes...)
}

// LoadToken reads a token previously written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingToken
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
