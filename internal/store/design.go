package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/givebridge/sharepage/internal/database"
	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/model"
)

// DesignStore persists template designs keyed by share identifier. The store
// is last-write-wins: Save overwrites the whole design with no version check,
// acceptable under the one-editor-per-organization assumption.
type DesignStore struct {
	pool  *pgxpool.Pool
	links *ShareLinkRepository
}

// NewDesignStore creates a new design store.
// Returns error if pool or links is nil.
func NewDesignStore(pool *pgxpool.Pool, links *ShareLinkRepository) (*DesignStore, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	if links == nil {
		return nil, errors.New("share link repository is required")
	}
	return &DesignStore{pool: pool, links: links}, nil
}

// Load returns the design behind a share link. An unknown link yields
// ErrShareLinkNotFound; a known link with no saved design yields the default
// design. AdditionalData round-trips opaque through the jsonb column.
func (s *DesignStore) Load(ctx context.Context, shareID string) (model.TemplateDesign, error) {
	if _, err := s.links.Resolve(ctx, shareID); err != nil {
		return model.TemplateDesign{}, err
	}

	query, args, err := database.QB.
		Select("html", "css", "additional_data").
		From("template_designs").
		Where("share_id = ?", shareID).
		ToSql()
	if err != nil {
		return model.TemplateDesign{}, fmt.Errorf("build design query: %w", err)
	}

	var d model.TemplateDesign
	var additional []byte
	err = s.pool.QueryRow(ctx, query, args...).Scan(&d.HTML, &d.CSS, &additional)
	if errors.Is(err, pgx.ErrNoRows) {
		return design.DefaultDesign(), nil
	}
	if err != nil {
		return model.TemplateDesign{}, fmt.Errorf("query design: %w", err)
	}

	if len(additional) > 0 {
		if err := json.Unmarshal(additional, &d.AdditionalData); err != nil {
			return model.TemplateDesign{}, fmt.Errorf("decode additional data: %w", err)
		}
	}
	if d.AdditionalData == nil {
		d.AdditionalData = map[string]any{}
	}

	return d, nil
}

// Save fully overwrites the design for a share link. No partial merge, no
// versioning across saves.
func (s *DesignStore) Save(ctx context.Context, shareID string, d model.TemplateDesign) error {
	if _, err := s.links.Resolve(ctx, shareID); err != nil {
		return err
	}

	additional := d.AdditionalData
	if additional == nil {
		additional = map[string]any{}
	}
	encoded, err := json.Marshal(additional)
	if err != nil {
		return fmt.Errorf("encode additional data: %w", err)
	}

	query, args, err := database.QB.
		Insert("template_designs").
		Columns("share_id", "html", "css", "additional_data", "updated_at").
		Values(shareID, d.HTML, d.CSS, encoded, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (share_id) DO UPDATE SET html = EXCLUDED.html, css = EXCLUDED.css, additional_data = EXCLUDED.additional_data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save design: %w", err)
	}

	return nil
}

// DefaultDesign returns the built-in starting template, a fresh value per
// call.
func (s *DesignStore) DefaultDesign() model.TemplateDesign {
	return design.DefaultDesign()
}
