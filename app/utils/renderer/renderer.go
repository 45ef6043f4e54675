package renderer

import (
	"github.com/Rakhulsr/go-category-admin/templates"
	"github.com/unrolled/render"
)

func New(isDevelopment bool) *render.Render {
	return render.New(render.Options{
		Directory:     ".",
		FileSystem:    &render.EmbedFileSystem{FS: templates.FS},
		Layout:        "layout",
		Extensions:    []string{".html"},
		IsDevelopment: isDevelopment,
	})
}
