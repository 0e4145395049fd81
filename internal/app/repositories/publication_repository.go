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

// PublicationFilter holds the optional list-query criteria. Scalar fields
// combine as AND conditions; SearchTerm adds a case-insensitive OR group
// over title and the serialized authors text.
type PublicationFilter struct {
	CreatorID  *string
	Year       *int
	SearchTerm *string
}

// PublicationRepository handles publication database operations
type PublicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const publicationColumns = "p.id, p.title, p.authors, p.year, p.journal, p.volume, p.pages, p.doi, p.type, p.user_id, p.created_at, p.updated_at"

func (r *PublicationRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		strings.Split(publicationColumns, ", ")...,
	).
		Columns("u.name as creator_name", "u.email as creator_email").
		From("publications p").
		LeftJoin("users u ON p.user_id = u.id")
}

// publicationSearchCondition builds the free-text OR group. Authors are
// matched on their JSON-serialized form, a textual (not structural) match.
func publicationSearchCondition(term string) squirrel.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return squirrel.Or{
		squirrel.ILike{"p.title": pattern},
		squirrel.ILike{"p.authors": pattern},
	}
}

// publicationFilterConditions turns the typed filter into squirrel conditions.
func publicationFilterConditions(filter PublicationFilter) squirrel.And {
	where := squirrel.And{}
	if filter.CreatorID != nil && *filter.CreatorID != "" {
		where = append(where, squirrel.Eq{"p.user_id": *filter.CreatorID})
	}
	if filter.Year != nil {
		where = append(where, squirrel.Eq{"p.year": *filter.Year})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		where = append(where, publicationSearchCondition(*filter.SearchTerm))
	}
	return where
}

// GetAll retrieves publications matching the filter, newest first.
func (r *PublicationRepository) GetAll(ctx context.Context, filter PublicationFilter) ([]models.Publication, error) {
	selectBuilder := r.baseSelect().
		Where(publicationFilterConditions(filter)).
		OrderBy("p.year DESC", "p.created_at DESC")

	querySql, args, err := selectBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list publications SQL")
		return nil, fmt.Errorf("failed to build list publications query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list publications query")
		return nil, fmt.Errorf("failed to query publications: %w", err)
	}
	defer rows.Close()

	publications := []models.Publication{}
	for rows.Next() {
		publication, err := scanPublication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning publication row")
			return nil, fmt.Errorf("failed to scan publication row: %w", err)
		}
		publications = append(publications, *publication)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publication rows: %w", err)
	}

	return publications, nil
}

// GetByID retrieves a publication by id, enriched with its creator.
func (r *PublicationRepository) GetByID(ctx context.Context, id string) (*models.Publication, error) {
	selectBuilder := r.baseSelect().
		Where(squirrel.Eq{"p.id": id}).
		Limit(1)

	querySql, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get publication query: %w", err)
	}

	publication, err := scanPublication(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		logger.Error().Err(err).Str("publicationID", id).Msg("Error scanning publication row by ID")
		return nil, fmt.Errorf("error querying publication id=%s: %w", id, err)
	}

	return publication, nil
}

// Create inserts a new publication and returns its generated id.
// The authors list is encoded to JSON text at this boundary.
func (r *PublicationRepository) Create(ctx context.Context, publication *models.Publication) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("publications").
		Columns("id", "title", "authors", "year", "journal", "volume", "pages", "doi", "type", "user_id").
		Values(
			id, publication.Title, publication.Authors.Encode(), publication.Year,
			publication.Journal, publication.Volume, publication.Pages, publication.DOI,
			publication.Type, publication.UserID,
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create publication query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create publication query")
		return "", err
	}

	logger.Info().Str("publicationID", id).Msg("Publication created")
	return id, nil
}

// Update applies the provided column updates to an existing publication.
func (r *PublicationRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("publications").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update publication query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("publicationID", id).Msg("Error executing update publication query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}

	return nil
}

// Delete removes a publication from the database.
func (r *PublicationRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("publications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete publication query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("publicationID", id).Msg("Error executing delete publication query")
		return fmt.Errorf("error deleting publication id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}

	logger.Info().Str("publicationID", id).Msg("Publication deleted")
	return nil
}

// scanPublication maps one joined row, decoding the JSON-text authors list
// and the nullable creator columns.
func scanPublication(row pgx.Row) (*models.Publication, error) {
	var publication models.Publication
	var authorsText string
	var creatorName, creatorEmail sql.NullString
	var userID sql.NullString

	err := row.Scan(
		&publication.ID, &publication.Title, &authorsText, &publication.Year,
		&publication.Journal, &publication.Volume, &publication.Pages, &publication.DOI,
		&publication.Type, &userID, &publication.CreatedAt, &publication.UpdatedAt,
		&creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}

	publication.Authors = models.DecodeStringList(authorsText)
	if userID.Valid {
		publication.UserID = userID.String
	}
	if creatorName.Valid {
		publication.CreatorName = &creatorName.String
	}
	if creatorEmail.Valid {
		publication.CreatorEmail = &creatorEmail.String
	}

	return &publication, nil
}
