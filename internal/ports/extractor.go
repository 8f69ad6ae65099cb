package ports

import (
	"context"

	"github.com/bsaveapp/bsave/internal/models"
)

type Extractor interface {
	Resolve(ctx context.Context, videoURL string) (models.ExtractResponse, error)
}
