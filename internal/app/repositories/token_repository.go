package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// TokenRepository handles refresh token database operations
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Store persists a refresh token with its expiry.
func (r *TokenRepository) Store(ctx context.Context, token string, userID string, expiresAt time.Time) error {
	querySql, args, err := r.sb.Insert("refresh_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token, userID, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build store token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error storing refresh token")
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// Find returns the stored token record. A missing, revoked, or expired
// token yields a token error sentinel.
func (r *TokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	querySql, args, err := r.sb.Select("token", "user_id", "expires_at", "revoked", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find token query: %w", err)
	}

	var rec models.RefreshToken
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&rec.Token, &rec.UserID, &rec.ExpiresAt, &rec.Revoked, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Msg("Error querying refresh token")
		return nil, fmt.Errorf("error querying refresh token: %w", err)
	}

	if rec.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(rec.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	return &rec, nil
}

// Revoke marks a single refresh token as revoked.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	querySql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error revoking refresh token")
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	return nil
}

// RevokeAllForUser invalidates every refresh token a user holds, used
// after a password change.
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	querySql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"user_id": userID, "revoked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke user tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error revoking user refresh tokens")
		return fmt.Errorf("error revoking user refresh tokens: %w", err)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry, revoked or not.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	querySql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete expired tokens query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
