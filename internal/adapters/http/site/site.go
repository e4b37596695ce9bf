// Package site serves the embedded rotation dashboard page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the dashboard routes to mux. The page is static HTML;
// it reads live data from the JSON API with client-side requests.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		serveDashboard(w, r)
	})
	mux.HandleFunc("/dashboard", serveDashboard)
}

func serveDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, dashboardFS(), "dashboard.html")
}
