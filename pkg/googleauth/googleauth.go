// Package googleauth loads Google credentials and turns them into
// transport options for the generated API clients. It understands
// service-account key files, authorized-user files and Application
// Default Credentials.
package googleauth

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/apiary-go/googleapis/pkg/gapi"
)

// Credentials wraps a resolved google.Credentials value.
type Credentials struct {
	creds *google.Credentials
}

// FromFile loads credentials from a JSON key file. An empty path falls
// back to Application Default Credentials (GOOGLE_APPLICATION_CREDENTIALS,
// gcloud user credentials, metadata server).
func FromFile(ctx context.Context, path string, scopes ...string) (*Credentials, error) {
	if path == "" {
		return Default(ctx, scopes...)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read credentials file %s", path)
	}
	return FromJSON(ctx, data, scopes...)
}

// FromJSON builds credentials from service-account or authorized-user
// key JSON.
func FromJSON(ctx context.Context, data []byte, scopes ...string) (*Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "parse credentials JSON")
	}
	return &Credentials{creds: creds}, nil
}

// Default resolves Application Default Credentials.
func Default(ctx context.Context, scopes ...string) (*Credentials, error) {
	creds, err := google.FindDefaultCredentials(ctx, scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "resolve application default credentials")
	}
	return &Credentials{creds: creds}, nil
}

// TokenSource returns the OAuth2 token source backing these
// credentials.
func (c *Credentials) TokenSource() oauth2.TokenSource {
	return c.creds.TokenSource
}

// ProjectID returns the project the credentials are bound to, when the
// key material carries one.
func (c *Credentials) ProjectID() string {
	return c.creds.ProjectID
}

// ClientOption returns the gapi option every NewService constructor
// accepts.
func (c *Credentials) ClientOption() gapi.Option {
	return gapi.WithTokenSource(c.creds.TokenSource)
}

// StaticToken returns a token source serving one fixed access token.
// Useful for tests and short-lived tooling where the token is obtained
// out of band (e.g. `gcloud auth print-access-token`).
func StaticToken(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}
