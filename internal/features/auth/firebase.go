// ================== internal/features/auth/firebase.go ==================
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/xyz-asif/campusfix/internal/config"
)

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(cfg *config.Config) (*fbauth.Client, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return client, nil
}

// FirebaseUser is the identity extracted from a verified Firebase ID token.
type FirebaseUser struct {
	UID           string
	Email         string
	Name          string
	EmailVerified bool
}

// VerifyFirebaseToken verifies an ID token minted by the web client's
// Firebase SDK and extracts the identity claims.
func VerifyFirebaseToken(ctx context.Context, client *fbauth.Client, idToken string) (*FirebaseUser, error) {
	decoded, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %v", err)
	}

	user := &FirebaseUser{UID: decoded.UID}

	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		user.Name = name
	}
	if verified, ok := decoded.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user, nil
}
