package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bhamfoods/invoicetrack-backend/pkg/config"
)

// Static serves the single-page client. The index is always delivered with
// no-cache headers so a deploy takes effect on the next reload; hashed
// assets cache normally.
func Static(cfg config.StaticConfig) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(cfg.Dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			serveIndex(w, r, cfg)
			return
		}

		full := filepath.Join(cfg.Dir, filepath.Clean("/"+path))
		if info, err := os.Stat(full); err != nil || info.IsDir() {
			// Unknown paths fall back to the index so client-side routes work.
			serveIndex(w, r, cfg)
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}

func serveIndex(w http.ResponseWriter, r *http.Request, cfg config.StaticConfig) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	http.ServeFile(w, r, filepath.Join(cfg.Dir, cfg.IndexFile))
}
