package site

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// dashboardFS exposes a sub-filesystem rooted at static/.
func dashboardFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}
