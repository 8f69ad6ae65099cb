package ports

import (
	"context"

	"github.com/bsaveapp/bsave/internal/models"
)

type DownloadRepository interface {
	InsertDownload(ctx context.Context, rec *models.DownloadRecord) (*models.DownloadRecord, error)
	RecentDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error)
}
