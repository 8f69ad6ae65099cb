package infra

import (
	"context"
	"fmt"

	"github.com/bsaveapp/bsave/internal/models"
	"github.com/bsaveapp/bsave/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDownloadRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresDownloadRepo(pool *pgxpool.Pool) ports.DownloadRepository {
	return &PostgresDownloadRepo{pool: pool}
}

func (r *PostgresDownloadRepo) InsertDownload(ctx context.Context, rec *models.DownloadRecord) (*models.DownloadRecord, error) {
	query := `
		INSERT INTO bsave_downloads (source_url, media_url, title, filename)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query, rec.SourceURL, rec.MediaURL, rec.Title, rec.Filename)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert download: %w", err)
	}
	return rec, nil
}

func (r *PostgresDownloadRepo) RecentDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, source_url, media_url, title, filename, created_at
		FROM bsave_downloads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent downloads: %w", err)
	}
	defer rows.Close()

	var out []models.DownloadRecord
	for rows.Next() {
		var rec models.DownloadRecord
		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.MediaURL, &rec.Title, &rec.Filename, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan download row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate downloads: %w", err)
	}
	return out, nil
}
