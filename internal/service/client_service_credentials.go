package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
)

type credentialService struct {
	state store.StateRepository
	now   func() time.Time
}

// NewCredentialService returns a [CredentialService] keeping the token in the
// local state table, so it survives restarts.
func NewCredentialService(state store.StateRepository) CredentialService {
	return &credentialService{state: state, now: time.Now}
}

func (c *credentialService) Token(ctx context.Context) (string, error) {
	token, err := c.state.Get(ctx, store.KeyAuthToken)
	if errors.Is(err, store.ErrNotFound) {
		return "", adapter.ErrNoCredentials
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	if c.expired(token) {
		logger.FromContext(ctx).Warn().
			Str("func", "credentialService.Token").
			Msg("stored token is expired")
		return "", fmt.Errorf("%w: %w", adapter.ErrNoCredentials, ErrTokenIsExpired)
	}

	return token, nil
}

func (c *credentialService) Invalidate(ctx context.Context) error {
	logger.FromContext(ctx).Info().
		Str("func", "credentialService.Invalidate").
		Msg("forgetting rejected token")
	return c.state.Delete(ctx, store.KeyAuthToken)
}

func (c *credentialService) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if c.expired(token) {
		return ErrTokenIsExpired
	}

	return c.state.Set(ctx, store.KeyAuthToken, token)
}

// expired reports whether token is a JWT whose exp claim has passed. Opaque
// tokens and tokens without exp are left for the server to judge.
func (c *credentialService) expired(token string) bool {
	exp, err := utils.TokenExpiresAt(token)
	if err != nil {
		return false
	}
	return !c.now().Before(exp)
}
