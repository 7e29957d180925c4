// Package auth wraps the Firebase identity service: anonymous provisioning,
// in-place anonymous-to-permanent upgrade, ID-token verification, admin custom
// claims, and session token issuance.
package auth

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

type Service struct {
	client    *auth.Client
	projectID string
}

// NewService initializes the Firebase app from FIREBASE_CREDENTIALS_JSON and
// FIREBASE_PROJECT_ID. Called once from main; there is no package-level state.
func NewService(ctx context.Context) (*Service, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_JSON must be set")
	}
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &Service{client: client, projectID: projectID}, nil
}

// CreateAnonymousIdentity provisions an identity with no credentials attached
// and returns its UID.
func (s *Service) CreateAnonymousIdentity(ctx context.Context) (string, error) {
	record, err := s.client.CreateUser(ctx, &auth.UserToCreate{})
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

// CreateIdentity provisions a permanent identity with credentials.
func (s *Service) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

// UpgradeIdentity attaches credentials to an existing anonymous identity. The
// UID is retained, so the user keeps their cart document.
func (s *Service) UpgradeIdentity(ctx context.Context, uid, email, password string) error {
	params := (&auth.UserToUpdate{}).Email(email).Password(password)
	_, err := s.client.UpdateUser(ctx, uid, params)
	return err
}

// VerifyIDToken verifies a Firebase ID token (including revocation) and
// checks the audience, as the trusted login path.
func (s *Service) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := s.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.Audience != s.projectID {
		return nil, fmt.Errorf("invalid token audience")
	}
	return token, nil
}

// SetAdminClaim looks up the identity by email and attaches the isAdmin
// custom claim, the sole way administrative privilege is granted.
func (s *Service) SetAdminClaim(ctx context.Context, email string) error {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}
	if err := s.client.SetCustomUserClaims(ctx, record.UID, map[string]interface{}{"isAdmin": true}); err != nil {
		return fmt.Errorf("set claim for %s: %w", email, err)
	}
	return nil
}

// RevokeSessions invalidates the identity's refresh tokens.
func (s *Service) RevokeSessions(ctx context.Context, uid string) error {
	return s.client.RevokeRefreshTokens(ctx, uid)
}
