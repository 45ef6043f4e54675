package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-category-admin/app/models"
	"github.com/Rakhulsr/go-category-admin/app/models/other"
	"github.com/Rakhulsr/go-category-admin/app/services"
	"github.com/Rakhulsr/go-category-admin/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-category-admin/app/utils/metrics"
	"github.com/Rakhulsr/go-category-admin/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	categorySvc  services.CategoryService
	sessionStore sessions.SessionStore
	metrics      *metrics.Collector
	logger       *zap.Logger
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	categorySvc services.CategoryService,
	sessionStore sessions.SessionStore,
	metrics *metrics.Collector,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator,
		categorySvc:  categorySvc,
		sessionStore: sessionStore,
		metrics:      metrics,
		logger:       logger,
	}
}

type AdminPageData struct {
	other.BasePageData
	TotalCategories int64
}

type AdminCategoryPageData struct {
	other.BasePageData
	Categories   []models.Category
	CategoryData *CategoryForm
	IsEdit       bool
	FormAction   string
}

type CategoryForm struct {
	ID   string `form:"id"`
	Name string `form:"name" validate:"required,max=100,sluggable"`
	Slug string
}

// RegisterRoutes mounts the admin pages. PUT and DELETE arrive as POST with
// a _method field, so the router must sit behind MethodOverrideMiddleware.
func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/admin", h.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/admin/categories", h.GetCategoriesPage).Methods(http.MethodGet)
	router.HandleFunc("/admin/categories/create", h.AddCategoryPage).Methods(http.MethodGet)
	router.HandleFunc("/admin/categories", h.AddCategoryPost).Methods(http.MethodPost)
	router.HandleFunc("/admin/categories/{id}/edit", h.EditCategoryPage).Methods(http.MethodGet)
	router.HandleFunc("/admin/categories/{id}", h.EditCategoryPost).Methods(http.MethodPut)
	router.HandleFunc("/admin/categories/{id}", h.DeleteCategoryPost).Methods(http.MethodDelete)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{}
	h.populateBaseDataForAdmin(w, r, &data.BasePageData)

	data.Title = "Dashboard"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Admin", URL: "/admin"},
	}

	count, err := h.categorySvc.Count(r.Context())
	if err != nil {
		h.logger.Error("Dashboard: failed to count categories", zap.Error(err))
		data.Message = "Unable to load category statistics."
		data.MessageStatus = sessions.FlashError
	}
	data.TotalCategories = count

	h.html(w, "admin/dashboard", data)
}

func (h *AdminHandler) populateBaseDataForAdmin(w http.ResponseWriter, r *http.Request, data *other.BasePageData) {
	data.IsAdminPage = true
	data.CurrentPath = r.URL.Path
	data.CSRFField = csrf.TemplateField(r)
	data.Flashes = h.sessionStore.PopFlashes(w, r)
}

func (h *AdminHandler) html(w http.ResponseWriter, name string, data interface{}) {
	if err := h.render.HTML(w, http.StatusOK, name, data); err != nil {
		h.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
	}
}

// flashAndRedirect is the single exit of every mutating admin action.
func (h *AdminHandler) flashAndRedirect(w http.ResponseWriter, r *http.Request, status, message, target string) {
	if err := h.sessionStore.AddFlash(w, r, status, message); err != nil {
		h.logger.Error("Failed to store flash message", zap.String("status", status), zap.Error(err))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
