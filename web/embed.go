package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed public
var content embed.FS

// Shell file names inside PublicFS.
const (
	IndexPage  = "index.html"
	ManagePage = "manage.html"
)

// PublicFS returns the file system holding the client page shells.
func PublicFS() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		log.Fatalf("failed to create public sub-filesystem: %v", err)
	}
	return sub
}
