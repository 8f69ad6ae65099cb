package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/bsaveapp/bsave/internal/domain"
	"github.com/bsaveapp/bsave/internal/models"
	"github.com/bsaveapp/bsave/internal/ports"
)

type VideoHandler struct {
	sessions *domain.SessionManager
	history  ports.DownloadRepository
	log      *logger.ZapLogger
}

func NewVideoHandler(sessions *domain.SessionManager, history ports.DownloadRepository, log *logger.ZapLogger) *VideoHandler {
	return &VideoHandler{
		sessions: sessions,
		history:  history,
		log:      log,
	}
}

type roomRequest struct {
	Room string `json:"room"`
	URL  string `json:"url,omitempty"`
}

// POST /api/resolve
func (h *VideoHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	sess := h.sessions.Get(req.Room)
	result, err := sess.Submit(r.Context(), req.URL)
	observeResolve(err)
	if err != nil {
		h.logWarn("resolve failed", map[string]any{"room": req.Room, "url": req.URL}, err)
		writeJSON(w, map[string]any{
			"success": false,
			"error":   domain.UserMessage(err),
		})
		return
	}

	writeJSON(w, map[string]any{
		"success": true,
		"video":   result,
	})
}

// POST /api/download
func (h *VideoHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	sess := h.sessions.Get(req.Room)
	trig, err := sess.Download()
	if err != nil {
		writeJSON(w, map[string]any{
			"success": false,
			"error":   domain.UserMessage(err),
		})
		return
	}

	observeDownload()

	// history is best effort: a failed insert must not break the trigger
	if _, err := h.history.InsertDownload(r.Context(), &models.DownloadRecord{
		SourceURL: trig.SourceURL,
		MediaURL:  trig.MediaURL,
		Title:     trig.Title,
		Filename:  trig.Filename,
	}); err != nil {
		h.logWarn("history insert failed", map[string]any{"room": req.Room}, err)
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "download triggered",
		Fields: map[string]any{
			"room":     req.Room,
			"filename": trig.Filename,
		},
	})

	writeJSON(w, map[string]any{
		"success":   true,
		"media_url": trig.MediaURL,
		"filename":  trig.Filename,
	})
}

// POST /api/clear — input edit / Escape: drop error, preview and result.
func (h *VideoHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.sessions.Get(req.Room).EditInput()
	writeJSON(w, map[string]any{"success": true})
}

func (h *VideoHandler) logWarn(msg string, fields map[string]any, err error) {
	h.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
