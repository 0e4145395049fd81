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

// TheseFilter holds the optional list-query criteria for theses.
type TheseFilter struct {
	CreatorID  *string
	Year       *int
	Type       *models.TheseType
	SearchTerm *string
}

// TheseRepository handles thesis database operations
type TheseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTheseRepository creates a new TheseRepository
func NewTheseRepository(db *pgxpool.Pool) *TheseRepository {
	return &TheseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *TheseRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"t.id", "t.title", "t.author", "t.year", "t.summary", "t.type",
		"t.etablissement", "t.specialite", "t.encadrant", "t.membres",
		"t.user_id", "t.created_at", "t.updated_at",
		"u.name as creator_name", "u.email as creator_email",
	).
		From("theses t").
		LeftJoin("users u ON t.user_id = u.id")
}

// theseSearchCondition spans every descriptive text column, including the
// serialized jury list.
func theseSearchCondition(term string) squirrel.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return squirrel.Or{
		squirrel.ILike{"t.title": pattern},
		squirrel.ILike{"t.author": pattern},
		squirrel.ILike{"t.etablissement": pattern},
		squirrel.ILike{"t.specialite": pattern},
		squirrel.ILike{"t.encadrant": pattern},
		squirrel.ILike{"t.membres": pattern},
	}
}

func theseFilterConditions(filter TheseFilter) squirrel.And {
	where := squirrel.And{}
	if filter.CreatorID != nil && *filter.CreatorID != "" {
		where = append(where, squirrel.Eq{"t.user_id": *filter.CreatorID})
	}
	if filter.Year != nil {
		where = append(where, squirrel.Eq{"t.year": *filter.Year})
	}
	if filter.Type != nil && *filter.Type != "" {
		where = append(where, squirrel.Eq{"t.type": *filter.Type})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		where = append(where, theseSearchCondition(*filter.SearchTerm))
	}
	return where
}

// GetAll retrieves theses matching the filter, newest first.
func (r *TheseRepository) GetAll(ctx context.Context, filter TheseFilter) ([]models.These, error) {
	selectBuilder := r.baseSelect().
		Where(theseFilterConditions(filter)).
		OrderBy("t.year DESC", "t.created_at DESC")

	querySql, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list theses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list theses query")
		return nil, fmt.Errorf("failed to query theses: %w", err)
	}
	defer rows.Close()

	theses := []models.These{}
	for rows.Next() {
		these, err := scanThese(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning these row")
			return nil, fmt.Errorf("failed to scan these row: %w", err)
		}
		theses = append(theses, *these)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating these rows: %w", err)
	}

	return theses, nil
}

// GetByID retrieves a thesis by id, enriched with its creator.
func (r *TheseRepository) GetByID(ctx context.Context, id string) (*models.These, error) {
	querySql, args, err := r.baseSelect().
		Where(squirrel.Eq{"t.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get these query: %w", err)
	}

	these, err := scanThese(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTheseNotFound
		}
		logger.Error().Err(err).Str("theseID", id).Msg("Error scanning these row by ID")
		return nil, fmt.Errorf("error querying these id=%s: %w", id, err)
	}

	return these, nil
}

// Create inserts a new thesis and returns its generated id.
func (r *TheseRepository) Create(ctx context.Context, these *models.These) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("theses").
		Columns("id", "title", "author", "year", "summary", "type", "etablissement", "specialite", "encadrant", "membres", "user_id").
		Values(
			id, these.Title, these.Author, these.Year, these.Summary, these.Type,
			these.Etablissement, these.Specialite, these.Encadrant, these.Membres.Encode(),
			these.UserID,
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create these query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create these query")
		return "", err
	}

	logger.Info().Str("theseID", id).Msg("These created")
	return id, nil
}

// Update applies the provided column updates to an existing thesis.
func (r *TheseRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("theses").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update these query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("theseID", id).Msg("Error executing update these query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTheseNotFound
	}

	return nil
}

// Delete removes a thesis from the database.
func (r *TheseRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("theses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete these query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("theseID", id).Msg("Error executing delete these query")
		return fmt.Errorf("error deleting these id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTheseNotFound
	}

	logger.Info().Str("theseID", id).Msg("These deleted")
	return nil
}

func scanThese(row pgx.Row) (*models.These, error) {
	var these models.These
	var membresText string
	var userID, creatorName, creatorEmail sql.NullString

	err := row.Scan(
		&these.ID, &these.Title, &these.Author, &these.Year, &these.Summary,
		&these.Type, &these.Etablissement, &these.Specialite, &these.Encadrant,
		&membresText, &userID, &these.CreatedAt, &these.UpdatedAt,
		&creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}

	these.Membres = models.DecodeStringList(membresText)
	if userID.Valid {
		these.UserID = userID.String
	}
	if creatorName.Valid {
		these.CreatorName = &creatorName.String
	}
	if creatorEmail.Valid {
		these.CreatorEmail = &creatorEmail.String
	}

	return &these, nil
}
