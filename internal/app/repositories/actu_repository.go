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
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// ActuFilter holds the optional list-query criteria for news items.
type ActuFilter struct {
	CreatorID  *string
	Category   *models.ActuCategory
	SearchTerm *string
}

// ActuRepository handles news item database operations
type ActuRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActuRepository creates a new ActuRepository
func NewActuRepository(db *pgxpool.Pool) *ActuRepository {
	return &ActuRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ActuRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.title", "a.category", "a.date", "a.image",
		"a.short_description", "a.full_content",
		"a.user_id", "a.created_at", "a.updated_at",
		"u.name as creator_name", "u.email as creator_email",
	).
		From("actus a").
		LeftJoin("users u ON a.user_id = u.id")
}

func actuSearchCondition(term string) squirrel.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return squirrel.Or{
		squirrel.ILike{"a.title": pattern},
		squirrel.ILike{"a.short_description": pattern},
	}
}

func actuFilterConditions(filter ActuFilter) squirrel.And {
	where := squirrel.And{}
	if filter.CreatorID != nil && *filter.CreatorID != "" {
		where = append(where, squirrel.Eq{"a.user_id": *filter.CreatorID})
	}
	if filter.Category != nil && *filter.Category != "" {
		where = append(where, squirrel.Eq{"a.category": *filter.Category})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		where = append(where, actuSearchCondition(*filter.SearchTerm))
	}
	return where
}

// GetAll retrieves news items matching the filter, newest first.
func (r *ActuRepository) GetAll(ctx context.Context, filter ActuFilter) ([]models.Actu, error) {
	querySql, args, err := r.baseSelect().
		Where(actuFilterConditions(filter)).
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list actus query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list actus query")
		return nil, fmt.Errorf("failed to query actus: %w", err)
	}
	defer rows.Close()

	actus := []models.Actu{}
	for rows.Next() {
		actu, err := scanActu(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning actu row")
			return nil, fmt.Errorf("failed to scan actu row: %w", err)
		}
		actus = append(actus, *actu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actu rows: %w", err)
	}

	return actus, nil
}

// GetByID retrieves a news item by id, enriched with its creator.
func (r *ActuRepository) GetByID(ctx context.Context, id string) (*models.Actu, error) {
	querySql, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get actu query: %w", err)
	}

	actu, err := scanActu(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActuNotFound
		}
		logger.Error().Err(err).Str("actuID", id).Msg("Error scanning actu row by ID")
		return nil, fmt.Errorf("error querying actu id=%s: %w", id, err)
	}

	return actu, nil
}

// Create inserts a new news item and returns its generated id.
func (r *ActuRepository) Create(ctx context.Context, actu *models.Actu) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("actus").
		Columns("id", "title", "category", "date", "image", "short_description", "full_content", "user_id").
		Values(
			id, actu.Title, actu.Category, actu.Date, actu.Image,
			actu.ShortDescription, actu.FullContent, actu.UserID,
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create actu query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create actu query")
		return "", err
	}

	logger.Info().Str("actuID", id).Msg("Actu created")
	return id, nil
}

// Update applies the provided column updates to an existing news item.
func (r *ActuRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("actus").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update actu query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("actuID", id).Msg("Error executing update actu query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActuNotFound
	}

	return nil
}

// Delete removes a news item from the database.
func (r *ActuRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("actus").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete actu query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("actuID", id).Msg("Error executing delete actu query")
		return fmt.Errorf("error deleting actu id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActuNotFound
	}

	logger.Info().Str("actuID", id).Msg("Actu deleted")
	return nil
}

func scanActu(row pgx.Row) (*models.Actu, error) {
	var actu models.Actu
	var image, userID, creatorName, creatorEmail sql.NullString

	err := row.Scan(
		&actu.ID, &actu.Title, &actu.Category, &actu.Date, &image,
		&actu.ShortDescription, &actu.FullContent,
		&userID, &actu.CreatedAt, &actu.UpdatedAt,
		&creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}

	if image.Valid {
		actu.Image = &image.String
	}
	if userID.Valid {
		actu.UserID = userID.String
	}
	if creatorName.Valid {
		actu.CreatorName = &creatorName.String
	}
	if creatorEmail.Valid {
		actu.CreatorEmail = &creatorEmail.String
	}

	return &actu, nil
}
