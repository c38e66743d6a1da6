package repositories

import (
	"context"
	"crypto/subtle"
	"fmt"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"
)

// APIKeyRepository resolves client API key tokens to their scopes.
type APIKeyRepository interface {
	GetByToken(ctx context.Context, token string) (*models.APIKey, error)
}

// StaticAPIKeyRepository serves the API keys configured at startup.
type StaticAPIKeyRepository struct {
	keys []models.APIKey
}

// NewStaticAPIKeyRepository registers the admin and public key tokens.
// Empty tokens are skipped, which disables that key.
func NewStaticAPIKeyRepository(adminToken, publicToken string) *StaticAPIKeyRepository {
	r := &StaticAPIKeyRepository{}
	if adminToken != "" {
		r.keys = append(r.keys, models.APIKey{Token: adminToken, Scopes: models.AdminScopes})
	}
	if publicToken != "" {
		r.keys = append(r.keys, models.APIKey{Token: publicToken, Scopes: models.PublicScopes})
	}
	return r
}

// GetByToken returns the key matching token.
func (r *StaticAPIKeyRepository) GetByToken(_ context.Context, token string) (*models.APIKey, error) {
	for _, k := range r.keys {
		if subtle.ConstantTimeCompare([]byte(k.Token), []byte(token)) == 1 {
			key := models.APIKey{Token: k.Token, Scopes: append([]string(nil), k.Scopes...)}
			return &key, nil
		}
	}
	return nil, fmt.Errorf("api key: %w", apperrors.ErrNotFound)
}
