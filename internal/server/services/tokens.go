// Package services contains the server-side business logic: accounts,
// authentication tokens, the song catalog, playlists with collaboration
// and cached reads, and export dispatch.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/server/auth"
	"github.com/dmitrijs2005/tunedeck/internal/server/config"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies access tokens and manages the persisted
// refresh tokens backing them. Refresh tokens are not rotated when a new
// access token is minted; they live until explicitly revoked.
type TokenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	signer      *auth.Signer
	accessTTL   time.Duration
}

// NewTokenService builds a TokenService from configuration.
func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, signer *auth.Signer, cfg *config.Config) *TokenService {
	return &TokenService{
		db:          db,
		repomanager: m,
		signer:      signer,
		accessTTL:   cfg.AccessTokenValidityDuration,
	}
}

// Issue creates a new refresh token record and a signed access token for
// userID. Each call creates an independent session; concurrent sessions per
// user are allowed.
func (s *TokenService) Issue(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.signer.Sign(userID, s.accessTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrInternal
	}

	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Create(ctx, userID, refreshToken); err != nil {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token bound to the refresh token's user. The
// refresh token itself is left in place. An unknown token comes back as
// common.ErrInvalidToken.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", fmt.Errorf("error searching refresh token: %w", err)
	}

	accessToken, err := s.signer.Sign(token.UserID, s.accessTTL)
	if err != nil {
		return "", common.ErrInternal
	}

	return accessToken, nil
}

// Revoke deletes the refresh token record. Revoking an already-deleted
// token succeeds, so concurrent logouts do not race.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	repo := s.repomanager.RefreshTokens(s.db)
	return repo.Delete(ctx, refreshToken)
}

// VerifyAccess validates the signed access token and returns the user
// identifier it carries. Pure computation, no store access.
func (s *TokenService) VerifyAccess(accessToken string) (string, error) {
	return s.signer.Verify(accessToken)
}
