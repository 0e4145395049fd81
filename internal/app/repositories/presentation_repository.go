package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
)

// PresentationRepository handles homepage hero and carousel persistence.
// The heroes table holds at most one row.
type PresentationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPresentationRepository creates a new PresentationRepository
func NewPresentationRepository(db *pgxpool.Pool) *PresentationRepository {
	return &PresentationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetHero returns the singleton hero row.
func (r *PresentationRepository) GetHero(ctx context.Context) (*models.Hero, error) {
	querySql, args, err := r.sb.Select("id", "title", "subtitle", "description", "button_text", "button_link", "image", "updated_at").
		From("heroes").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hero query: %w", err)
	}

	var hero models.Hero
	var image sql.NullString
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&hero.ID, &hero.Title, &hero.Subtitle, &hero.Description,
		&hero.ButtonText, &hero.ButtonLink, &image, &hero.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHeroNotFound
		}
		logger.Error().Err(err).Msg("Error querying hero row")
		return nil, fmt.Errorf("error querying hero: %w", err)
	}

	if image.Valid {
		hero.Image = &image.String
	}

	return &hero, nil
}

// UpsertHero applies updates to the hero row, inserting it first when the
// table is still empty.
func (r *PresentationRepository) UpsertHero(ctx context.Context, updates map[string]interface{}) (*models.Hero, error) {
	hero, err := r.GetHero(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrHeroNotFound) {
			return nil, err
		}

		id := uuid.New().String()
		querySql, args, buildErr := r.sb.Insert("heroes").
			Columns("id").
			Values(id).
			ToSql()
		if buildErr != nil {
			return nil, fmt.Errorf("failed to build insert hero query: %w", buildErr)
		}
		if _, execErr := r.db.Exec(ctx, querySql, args...); execErr != nil {
			logger.Error().Err(execErr).Msg("Error inserting hero row")
			return nil, fmt.Errorf("error inserting hero: %w", execErr)
		}
		hero = &models.Hero{ID: id}
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		querySql, args, buildErr := r.sb.Update("heroes").
			SetMap(updates).
			Where(squirrel.Eq{"id": hero.ID}).
			ToSql()
		if buildErr != nil {
			return nil, fmt.Errorf("failed to build update hero query: %w", buildErr)
		}
		if _, execErr := r.db.Exec(ctx, querySql, args...); execErr != nil {
			logger.Error().Err(execErr).Msg("Error updating hero row")
			return nil, fmt.Errorf("error updating hero: %w", execErr)
		}
	}

	return r.GetHero(ctx)
}

// GetCarouselItems returns all slides ordered for display.
func (r *PresentationRepository) GetCarouselItems(ctx context.Context) ([]models.CarouselItem, error) {
	querySql, args, err := r.sb.Select("id", "title", "description", "image", "display_order", "created_at", "updated_at").
		From("carousel_items").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list carousel query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list carousel query")
		return nil, fmt.Errorf("failed to query carousel items: %w", err)
	}
	defer rows.Close()

	items := []models.CarouselItem{}
	for rows.Next() {
		item, err := scanCarouselItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan carousel row: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating carousel rows: %w", err)
	}

	return items, nil
}

// GetCarouselItemByID retrieves a single slide.
func (r *PresentationRepository) GetCarouselItemByID(ctx context.Context, id string) (*models.CarouselItem, error) {
	querySql, args, err := r.sb.Select("id", "title", "description", "image", "display_order", "created_at", "updated_at").
		From("carousel_items").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get carousel item query: %w", err)
	}

	item, err := scanCarouselItem(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCarouselNotFound
		}
		logger.Error().Err(err).Str("carouselID", id).Msg("Error scanning carousel row by ID")
		return nil, fmt.Errorf("error querying carousel item id=%s: %w", id, err)
	}

	return item, nil
}

// CreateCarouselItem inserts a slide and returns its generated id.
func (r *PresentationRepository) CreateCarouselItem(ctx context.Context, item *models.CarouselItem) (string, error) {
	id := uuid.New().String()

	querySql, args, err := r.sb.Insert("carousel_items").
		Columns("id", "title", "description", "image", "display_order").
		Values(id, item.Title, item.Description, item.Image, item.DisplayOrder).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create carousel item query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create carousel item query")
		return "", fmt.Errorf("error creating carousel item: %w", err)
	}

	logger.Info().Str("carouselID", id).Msg("Carousel item created")
	return id, nil
}

// UpdateCarouselItem applies the provided column updates to a slide.
func (r *PresentationRepository) UpdateCarouselItem(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("carousel_items").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update carousel item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("carouselID", id).Msg("Error executing update carousel item query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCarouselNotFound
	}

	return nil
}

// DeleteCarouselItem removes a slide.
func (r *PresentationRepository) DeleteCarouselItem(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("carousel_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete carousel item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("carouselID", id).Msg("Error executing delete carousel item query")
		return fmt.Errorf("error deleting carousel item id=%s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCarouselNotFound
	}

	logger.Info().Str("carouselID", id).Msg("Carousel item deleted")
	return nil
}

func scanCarouselItem(row pgx.Row) (*models.CarouselItem, error) {
	var item models.CarouselItem
	var image sql.NullString

	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &image,
		&item.DisplayOrder, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if image.Valid {
		item.Image = &image.String
	}

	return &item, nil
}
