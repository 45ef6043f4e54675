package other

import (
	"html/template"

	"github.com/Rakhulsr/go-category-admin/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-category-admin/app/utils/sessions"
)

type BasePageData struct {
	Title         string
	CSRFField     template.HTML
	Flashes       []sessions.Flash
	Message       string
	MessageStatus string
	Breadcrumbs   []breadcrumb.Breadcrumb
	CurrentPath   string
	IsAdminPage   bool
}
