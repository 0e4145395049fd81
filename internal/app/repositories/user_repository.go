package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/dberrors"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// UserFilter holds the optional directory-query criteria.
type UserFilter struct {
	Role       *models.RoleType
	SearchTerm *string
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "name", "email", "password", "role", "position", "biography",
		"expertises", "research_interests", "university_education", "image",
		"must_change_password", "created_at", "updated_at",
	).From("users")
}

func userSearchCondition(term string) squirrel.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return squirrel.Or{
		squirrel.ILike{"name": pattern},
		squirrel.ILike{"email": pattern},
		squirrel.ILike{"position": pattern},
		squirrel.ILike{"expertises": pattern},
	}
}

func userFilterConditions(filter UserFilter) squirrel.And {
	where := squirrel.And{}
	if filter.Role != nil && *filter.Role != "" {
		where = append(where, squirrel.Eq{"role": *filter.Role})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		where = append(where, userSearchCondition(*filter.SearchTerm))
	}
	return where
}

// GetAll retrieves users matching the filter, ordered by name.
func (r *UserRepository) GetAll(ctx context.Context, filter UserFilter) ([]models.User, error) {
	querySql, args, err := r.baseSelect().
		Where(userFilterConditions(filter)).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	querySql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error scanning user row by ID")
		return nil, fmt.Errorf("error querying user id=%s: %w", id, err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, matched case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	querySql, args, err := r.baseSelect().
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row by email")
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

// Count returns the total number of user rows. Used to decide whether
// open registration is still permitted.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// Create inserts a new user and returns its generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("users").
		Columns(
			"id", "name", "email", "password", "role", "position", "biography",
			"expertises", "research_interests", "university_education", "image",
			"must_change_password",
		).
		Values(
			id, user.Name, strings.ToLower(strings.TrimSpace(user.Email)), user.Password,
			user.Role, user.Position, user.Biography,
			user.Expertises.Encode(), user.ResearchInterests.Encode(), user.UniversityEducation.Encode(),
			user.Image, user.MustChangePassword,
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return "", err
	}

	logger.Info().Str("userID", id).Msg("User created")
	return id, nil
}

// Update applies the provided column updates to an existing user.
func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("users").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error executing update user query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Content rows keep their data; their user_id is
// set NULL by the schema's ON DELETE clause.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	logger.Info().Str("userID", id).Msg("User deleted")
	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var expertisesText, researchText, educationText string
	var image sql.NullString

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Position, &user.Biography,
		&expertisesText, &researchText, &educationText, &image,
		&user.MustChangePassword, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Expertises = models.DecodeStringList(expertisesText)
	user.ResearchInterests = models.DecodeStringList(researchText)
	user.UniversityEducation = models.DecodeEducationList(educationText)
	if image.Valid {
		user.Image = &image.String
	}

	return &user, nil
}
