package auth

import (
	"context"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Load resolves the credential list at startup: inline JSON wins, then a
// Secret Manager secret, then the stock defaults.
func Load(ctx context.Context, inline, secretName string, secrets *secretmanager.Client) ([]Credential, error) {
	if inline != "" {
		return ParseCredentials([]byte(inline))
	}

	if secretName != "" && secrets != nil {
		name := secretName
		if !strings.Contains(name, "/versions/") {
			name += "/versions/latest"
		}
		resp, err := secrets.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
			Name: name,
		})
		if err != nil {
			return nil, err
		}
		return ParseCredentials(resp.Payload.Data)
	}

	return DefaultCredentials(), nil
}
