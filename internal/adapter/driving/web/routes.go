package web

import "net/http"

// RegisterRoutes registers all web GUI routes on the provided mux.
// Web routes serve HTML at / and /app/* paths.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// The embedded FS paths already start with "static/", matching the URL.
	mux.Handle("GET /static/", http.FileServerFS(StaticFS))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Overview)
	mux.HandleFunc("GET /app/{tool}", h.ToolPage)
	mux.HandleFunc("POST /app/{tool}/records", h.SaveRecord)
	mux.HandleFunc("POST /app/{tool}/restore", h.Restore)
}
