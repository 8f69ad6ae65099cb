package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hVideo *VideoHandler, hHistory *HistoryHandler) {

	// front end
	r.Get("/", PageHandler)

	// resolve + download session API
	r.Post("/api/resolve", hVideo.Resolve)
	r.Post("/api/download", hVideo.Download)
	r.Post("/api/clear", hVideo.Clear)

	// download history
	r.Get("/api/history", hHistory.Recent)
}
