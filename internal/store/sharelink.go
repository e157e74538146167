// Package store persists share links and template designs in PostgreSQL.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/givebridge/sharepage/internal/config"
	"github.com/givebridge/sharepage/internal/database"
	"github.com/givebridge/sharepage/internal/model"
)

// ErrShareLinkNotFound is returned when an identifier does not correspond to
// any known target. Distinct from "no design saved yet", which is not an
// error.
var ErrShareLinkNotFound = errors.New("share link not found")

// ShareLinkRepository handles share link data access.
type ShareLinkRepository struct {
	pool *pgxpool.Pool
}

// NewShareLinkRepository creates a new share link repository.
// Returns error if pool is nil.
func NewShareLinkRepository(pool *pgxpool.Pool) (*ShareLinkRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &ShareLinkRepository{pool: pool}, nil
}

// Resolve looks up a share link by its public identifier.
func (r *ShareLinkRepository) Resolve(ctx context.Context, shareID string) (*model.ShareLink, error) {
	query, args, err := database.QB.
		Select("share_id", "target_type", "target_id", "created_at").
		From("share_links").
		Where("share_id = ?", shareID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build share link query: %w", err)
	}

	var link model.ShareLink
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&link.ShareID,
		&link.TargetType,
		&link.TargetID,
		&link.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("resolve %q: %w", shareID, ErrShareLinkNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query share link: %w", err)
	}

	return &link, nil
}

// Mint returns the share link for a target, creating one on first request.
// Minting is idempotent: one link per target, and the identifier never
// changes once created.
func (r *ShareLinkRepository) Mint(ctx context.Context, targetType model.TargetType, targetID string) (*model.ShareLink, error) {
	if !targetType.Valid() {
		return nil, fmt.Errorf("invalid target type %q", targetType)
	}
	if targetID == "" {
		return nil, errors.New("target ID is required")
	}

	if link, err := r.findByTarget(ctx, targetType, targetID); err == nil {
		return link, nil
	} else if !errors.Is(err, ErrShareLinkNotFound) {
		return nil, err
	}

	shareID, err := newShareID()
	if err != nil {
		return nil, fmt.Errorf("generate share ID: %w", err)
	}

	query, args, err := database.QB.
		Insert("share_links").
		Columns("share_id", "target_type", "target_id").
		Values(shareID, targetType, targetID).
		Suffix("ON CONFLICT (target_type, target_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mint query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert share link: %w", err)
	}

	// Re-read so a concurrent mint for the same target returns the winner.
	return r.findByTarget(ctx, targetType, targetID)
}

func (r *ShareLinkRepository) findByTarget(ctx context.Context, targetType model.TargetType, targetID string) (*model.ShareLink, error) {
	query, args, err := database.QB.
		Select("share_id", "target_type", "target_id", "created_at").
		From("share_links").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build target query: %w", err)
	}

	var link model.ShareLink
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&link.ShareID,
		&link.TargetType,
		&link.TargetID,
		&link.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShareLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query share link by target: %w", err)
	}

	return &link, nil
}

func newShareID() (string, error) {
	buf := make([]byte, config.ShareIDLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
