package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViews returns the HTML template engine backed by the embedded views
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// the embed pattern above guarantees the directory exists
		panic(err)
	}
	return html.NewFileSystem(nethttp.FS(sub), ".html")
}
