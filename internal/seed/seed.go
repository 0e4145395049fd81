package seed

import (
	"context"
	"errors"
	"os"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/auth"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

const (
	defaultAdminEmail = "admin@labtim.org"
	defaultAdminName  = "Administrateur LABTIM"
)

// Run ensures the minimum data the site needs: an admin account when the
// users table is empty, and the singleton hero row.
func Run(ctx context.Context, repos *repositories.Repositories) error {
	if err := seedAdmin(ctx, repos.Users); err != nil {
		return err
	}
	return seedHero(ctx, repos.Presentations)
}

func seedAdmin(ctx context.Context, users *repositories.UserRepository) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		logger.Warn().Msg("SEED_ADMIN_PASSWORD not set, skipping admin seeding; use /api/auth/register to create the first account")
		return nil
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     defaultAdminName,
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	id, err := users.Create(ctx, admin)
	if err != nil {
		return err
	}

	logger.Info().Str("userID", id).Str("email", email).Msg("Seeded admin account")
	return nil
}

func seedHero(ctx context.Context, presentations *repositories.PresentationRepository) error {
	_, err := presentations.GetHero(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrHeroNotFound) {
		return err
	}

	if _, err := presentations.UpsertHero(ctx, map[string]interface{}{
		"title":    "Laboratoire LABTIM",
		"subtitle": "Traitement de l'Information Médicale",
	}); err != nil {
		return err
	}

	logger.Info().Msg("Seeded default hero content")
	return nil
}
