package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/msdharani1/portfolio-api/config"
)

// Firebase bundles the two managed-service clients the app depends on: the
// identity service and the realtime document store.
type Firebase struct {
	Auth *auth.Client
	DB   *db.Client
}

// InitFirebase initializes the Firebase Admin SDK and returns the Auth and
// Database clients.
func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*Firebase, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.DatabaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Database client: %w", err)
	}

	return &Firebase{Auth: authClient, DB: dbClient}, nil
}
