package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/bsaveapp/bsave/internal/ports"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

type HistoryHandler struct {
	history ports.DownloadRepository
	log     *logger.ZapLogger
}

func NewHistoryHandler(history ports.DownloadRepository, log *logger.ZapLogger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		log:     log,
	}
}

// GET /api/history?limit=N
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.history.RecentDownloads(r.Context(), limit)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "history query failed",
			Error:   err,
		})
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"downloads": records,
	})
}
