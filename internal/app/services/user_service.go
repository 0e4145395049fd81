package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/app/models/dto"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/auth"
	"github.com/Tndevfactory/labtim/internal/pkg/email"
	"github.com/Tndevfactory/labtim/internal/pkg/filestorage"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

const temporaryPasswordLength = 12

// UserService defines member directory and account management operations.
type UserService interface {
	GetAll(ctx context.Context, filter repositories.UserFilter) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateUserRequest, imageFile *multipart.FileHeader) (*models.User, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type userService struct {
	userRepo     *repositories.UserRepository
	tokenRepo    *repositories.TokenRepository
	emailService email.Service
	storage      *filestorage.LocalStorage
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	emailService email.Service,
	storage *filestorage.LocalStorage,
) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		emailService: emailService,
		storage:      storage,
	}
}

// GetAll lists the member directory.
func (s *userService) GetAll(ctx context.Context, filter repositories.UserFilter) ([]models.User, error) {
	return s.userRepo.GetAll(ctx, filter)
}

// GetByID returns one member profile.
func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Create provisions a member account with a generated temporary password.
// The credentials are emailed after the row is committed; a mail failure
// is logged but does not undo the account.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role: %s", req.Role))
	}

	tempPassword, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hashed, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:               strings.TrimSpace(req.Name),
		Email:              req.Email,
		Password:           hashed,
		Role:               role,
		Position:           req.Position,
		MustChangePassword: true,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendCredentialsEmail(user.Email, user.Name, tempPassword); err != nil {
			logger.Error().Err(err).Str("userID", id).Msg("Failed to send credentials email")
		}
	}()

	return s.userRepo.GetByID(ctx, id)
}

// Update applies partial profile changes. Members edit their own profile;
// admins edit anyone. Changing a role is admin-only.
func (s *userService) Update(ctx context.Context, identity models.Identity, id string, req dto.UpdateUserRequest, imageFile *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.CanModify(user.ID) {
		return nil, apperrors.NewForbiddenError("you can only edit your own profile")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if !identity.IsAdmin() {
			return nil, apperrors.NewForbiddenError("only an admin can change roles")
		}
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role: %s", *req.Role))
		}
		updates["role"] = *req.Role
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Biography != nil {
		updates["biography"] = *req.Biography
	}
	if req.Expertises != nil {
		updates["expertises"] = req.Expertises.Encode()
	}
	if req.ResearchInterests != nil {
		updates["research_interests"] = req.ResearchInterests.Encode()
	}
	if req.UniversityEducation != nil {
		updates["university_education"] = req.UniversityEducation.Encode()
	}

	var oldImage *string
	if imageFile != nil {
		path, err := s.storage.SaveFile(imageFile)
		if err != nil {
			return nil, err
		}
		updates["image"] = path
		oldImage = user.Image
	}

	if err := s.userRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	if oldImage != nil {
		if err := s.storage.DeleteFile(*oldImage); err != nil {
			logger.Warn().Err(err).Str("path", *oldImage).Msg("Failed to delete replaced profile image")
		}
	}

	return s.userRepo.GetByID(ctx, id)
}

// Delete removes an account. Admin-only; an admin cannot delete their own
// account, which keeps at least one admin reachable.
func (s *userService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if identity.ID == id {
		return apperrors.NewValidationError("you cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, id); err != nil {
		logger.Warn().Err(err).Str("userID", id).Msg("Failed to revoke tokens of deleted user")
	}

	if user.Image != nil {
		if err := s.storage.DeleteFile(*user.Image); err != nil {
			logger.Warn().Err(err).Str("path", *user.Image).Msg("Failed to delete profile image of deleted user")
		}
	}

	return nil
}
