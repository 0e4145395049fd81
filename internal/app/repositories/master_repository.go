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

// MasterFilter holds the optional list-query criteria for master projects.
type MasterFilter struct {
	CreatorID  *string
	Year       *int
	Type       *models.MasterType
	SearchTerm *string
}

// MasterRepository handles master/PFE project database operations
type MasterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMasterRepository creates a new MasterRepository
func NewMasterRepository(db *pgxpool.Pool) *MasterRepository {
	return &MasterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MasterRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.title", "m.author", "m.year", "m.summary", "m.type",
		"m.etablissement", "m.specialite", "m.encadrant", "m.membres",
		"m.user_id", "m.created_at", "m.updated_at",
		"u.name as creator_name", "u.email as creator_email",
	).
		From("masters m").
		LeftJoin("users u ON m.user_id = u.id")
}

func masterSearchCondition(term string) squirrel.Sqlizer {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return squirrel.Or{
		squirrel.ILike{"m.title": pattern},
		squirrel.ILike{"m.author": pattern},
		squirrel.ILike{"m.etablissement": pattern},
		squirrel.ILike{"m.specialite": pattern},
		squirrel.ILike{"m.encadrant": pattern},
		squirrel.ILike{"m.membres": pattern},
	}
}

func masterFilterConditions(filter MasterFilter) squirrel.And {
	where := squirrel.And{}
	if filter.CreatorID != nil && *filter.CreatorID != "" {
		where = append(where, squirrel.Eq{"m.user_id": *filter.CreatorID})
	}
	if filter.Year != nil {
		where = append(where, squirrel.Eq{"m.year": *filter.Year})
	}
	if filter.Type != nil && *filter.Type != "" {
		where = append(where, squirrel.Eq{"m.type": *filter.Type})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		where = append(where, masterSearchCondition(*filter.SearchTerm))
	}
	return where
}

// GetAll retrieves master projects matching the filter, newest first.
func (r *MasterRepository) GetAll(ctx context.Context, filter MasterFilter) ([]models.MasterSI, error) {
	querySql, args, err := r.baseSelect().
		Where(masterFilterConditions(filter)).
		OrderBy("m.year DESC", "m.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list masters query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list masters query")
		return nil, fmt.Errorf("failed to query masters: %w", err)
	}
	defer rows.Close()

	masters := []models.MasterSI{}
	for rows.Next() {
		master, err := scanMaster(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning master row")
			return nil, fmt.Errorf("failed to scan master row: %w", err)
		}
		masters = append(masters, *master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating master rows: %w", err)
	}

	return masters, nil
}

// GetByID retrieves a master project by id, enriched with its creator.
func (r *MasterRepository) GetByID(ctx context.Context, id string) (*models.MasterSI, error) {
	querySql, args, err := r.baseSelect().
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get master query: %w", err)
	}

	master, err := scanMaster(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMasterNotFound
		}
		logger.Error().Err(err).Str("masterID", id).Msg("Error scanning master row by ID")
		return nil, fmt.Errorf("error querying master id=%s: %w", id, err)
	}

	return master, nil
}

// Create inserts a new master project and returns its generated id.
func (r *MasterRepository) Create(ctx context.Context, master *models.MasterSI) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("masters").
		Columns("id", "title", "author", "year", "summary", "type", "etablissement", "specialite", "encadrant", "membres", "user_id").
		Values(
			id, master.Title, master.Author, master.Year, master.Summary, master.Type,
			master.Etablissement, master.Specialite, master.Encadrant, master.Membres.Encode(),
			master.UserID,
		).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create master query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create master query")
		return "", err
	}

	logger.Info().Str("masterID", id).Msg("Master project created")
	return id, nil
}

// Update applies the provided column updates to an existing master project.
func (r *MasterRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("masters").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update master query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("masterID", id).Msg("Error executing update master query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMasterNotFound
	}

	return nil
}

// Delete removes a master project from the database.
func (r *MasterRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("masters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete master query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("masterID", id).Msg("Error executing delete master query")
		return fmt.Errorf("error deleting master id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMasterNotFound
	}

	logger.Info().Str("masterID", id).Msg("Master project deleted")
	return nil
}

func scanMaster(row pgx.Row) (*models.MasterSI, error) {
	var master models.MasterSI
	var membresText string
	var userID, creatorName, creatorEmail sql.NullString

	err := row.Scan(
		&master.ID, &master.Title, &master.Author, &master.Year, &master.Summary,
		&master.Type, &master.Etablissement, &master.Specialite, &master.Encadrant,
		&membresText, &userID, &master.CreatedAt, &master.UpdatedAt,
		&creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}

	master.Membres = models.DecodeStringList(membresText)
	if userID.Valid {
		master.UserID = userID.String
	}
	if creatorName.Valid {
		master.CreatorName = &creatorName.String
	}
	if creatorEmail.Valid {
		master.CreatorEmail = &creatorEmail.String
	}

	return &master, nil
}
