package security

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"banksampah-backend/internal/domain"
)

// FirebaseVerifier validates Firebase ID tokens. Role and unit scope come from
// custom claims set on the Firebase user; a token without a role claim is
// treated as a plain operator.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		Subject: token.UID,
		Role:    domain.RoleOperator,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := token.Claims["role"].(string); ok {
		identity.Role = domain.Role(role)
	}
	if unit, ok := token.Claims["unit_number"].(string); ok {
		identity.UnitNumber = unit
	}
	return identity, nil
}
