package googleauth_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"devflow/pkg/googleauth"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestTokenSourceFromJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("broken credentials", func(t *testing.T) {
		_, err := googleauth.TokenSourceFromJSON(context.Background(), []byte(`{"broken":true}`), filepath.Join(dir, "none.json"))
		if err == nil {
			t.Error("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := googleauth.TokenSourceFromJSON(context.Background(), []byte(installedCreds), filepath.Join(dir, "missing.json"))
		if !errors.Is(err, googleauth.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		path := filepath.Join(dir, "token.json")
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}
		if err := googleauth.SaveToken(path, tok); err != nil {
			t.Fatalf("SaveToken() error = %v", err)
		}

		ts, err := googleauth.TokenSourceFromJSON(context.Background(), []byte(installedCreds), path)
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		got, err := ts.Token()
		if err != nil || got.AccessToken != "dummy" {
			t.Errorf("expected stored token, got %v (%v)", got, err)
		}
	})

	t.Run("corrupt token", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		os.WriteFile(path, []byte(`{"broken": true`), 0o600)

		if _, err := googleauth.TokenSourceFromJSON(context.Background(), []byte(installedCreds), path); err == nil {
			t.Error("expected parse failure")
		}
	})
}

func TestTokenSourceFromFile_Missing(t *testing.T) {
	if _, err := googleauth.TokenSourceFromFile(context.Background(), "non-existent-file-path-12345.json", ""); err == nil {
		t.Error("expected read error")
	}
}
