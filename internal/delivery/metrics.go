package delivery

import (
	"errors"

	"github.com/bsaveapp/bsave/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bsave_resolves_total",
		Help: "Resolve attempts by outcome.",
	}, []string{"outcome"})

	downloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsave_downloads_total",
		Help: "Download triggers handed out.",
	})
)

func observeResolve(err error) {
	resolvesTotal.WithLabelValues(resolveOutcome(err)).Inc()
}

func observeDownload() {
	downloadsTotal.Inc()
}

func resolveOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *domain.HTTPStatusError
	var failedErr *domain.ExtractFailedError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConnectivity):
		return "connectivity"
	case errors.Is(err, domain.ErrPreviewRender):
		return "preview"
	case errors.As(err, &statusErr):
		return "http"
	case errors.As(err, &failedErr):
		return "rejected"
	default:
		return "service"
	}
}
