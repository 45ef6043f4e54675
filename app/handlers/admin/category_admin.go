package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"github.com/Rakhulsr/go-category-admin/app/services"
	"github.com/Rakhulsr/go-category-admin/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-category-admin/app/utils/metrics"
	"github.com/Rakhulsr/go-category-admin/app/utils/sessions"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	categoriesURL = "/admin/categories"
	dashboardURL  = "/admin"
)

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.List(r.Context())
	if err != nil {
		h.logger.Error("GetCategoriesPage: failed to list categories", zap.Error(err))
		h.flashAndRedirect(w, r, sessions.FlashError, "Something went wrong", dashboardURL)
		return
	}

	data := &AdminCategoryPageData{Categories: categories}
	h.populateBaseDataForAdmin(w, r, &data.BasePageData)

	data.Title = "Categories"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Admin", URL: dashboardURL},
		{Name: "Categories", URL: categoriesURL},
	}

	h.html(w, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		FormAction:   categoriesURL,
		IsEdit:       false,
		CategoryData: &CategoryForm{},
	}
	h.populateBaseDataForAdmin(w, r, &data.BasePageData)

	data.Title = "New Category"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Admin", URL: dashboardURL},
		{Name: "Categories", URL: categoriesURL},
		{Name: "New", URL: categoriesURL + "/create"},
	}

	h.html(w, "admin/categories/form", data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseCategoryForm(w, r, "create")
	if !ok {
		return
	}

	category, err := h.categorySvc.Create(r.Context(), form.Name)
	if err != nil {
		h.logger.Error("AddCategoryPost: failed to create category", zap.String("name", form.Name), zap.Error(err))
		h.metrics.RecordCategoryOperation("create", metrics.ResultError)
		h.flashAndRedirect(w, r, sessions.FlashError, "Unable to create category", categoriesURL)
		return
	}

	h.logger.Info("Category created", zap.String("id", category.ID), zap.String("slug", category.Slug))
	h.metrics.RecordCategoryOperation("create", metrics.ResultSuccess)
	h.flashAndRedirect(w, r, sessions.FlashSuccess, "Category added successfully", categoriesURL)
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categorySvc.Get(r.Context(), categoryID)
	if errors.Is(err, services.ErrCategoryNotFound) {
		h.flashAndRedirect(w, r, sessions.FlashError, "Category not found", categoriesURL)
		return
	}
	if err != nil {
		h.logger.Error("EditCategoryPage: failed to load category", zap.String("id", categoryID), zap.Error(err))
		h.flashAndRedirect(w, r, sessions.FlashError, "Something went wrong", categoriesURL)
		return
	}

	editURL := fmt.Sprintf("%s/%s/edit", categoriesURL, categoryID)
	data := &AdminCategoryPageData{
		FormAction: fmt.Sprintf("%s/%s", categoriesURL, categoryID),
		IsEdit:     true,
		CategoryData: &CategoryForm{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
		},
	}
	h.populateBaseDataForAdmin(w, r, &data.BasePageData)

	data.Title = "Edit Category"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Admin", URL: dashboardURL},
		{Name: "Categories", URL: categoriesURL},
		{Name: "Edit", URL: editURL},
	}

	h.html(w, "admin/categories/form", data)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	form, ok := h.parseCategoryForm(w, r, "update")
	if !ok {
		return
	}
	form.ID = categoryID

	category, err := h.categorySvc.Update(r.Context(), categoryID, form.Name)
	if err != nil {
		h.logger.Error("EditCategoryPost: failed to update category", zap.String("id", categoryID), zap.Error(err))
		h.metrics.RecordCategoryOperation("update", metrics.ResultError)
		h.flashAndRedirect(w, r, sessions.FlashError, "Unable to update category", categoriesURL)
		return
	}

	h.logger.Info("Category updated", zap.String("id", categoryID), zap.String("slug", category.Slug))
	h.metrics.RecordCategoryOperation("update", metrics.ResultSuccess)
	h.flashAndRedirect(w, r, sessions.FlashSuccess, "Category updated successfully", categoriesURL)
}

// DeleteCategoryPost soft deletes without looking the category up first, so
// an unknown id still ends in the success notice.
func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	if err := h.categorySvc.Delete(r.Context(), categoryID); err != nil {
		h.logger.Error("DeleteCategoryPost: failed to delete category", zap.String("id", categoryID), zap.Error(err))
		h.metrics.RecordCategoryOperation("delete", metrics.ResultError)
		h.flashAndRedirect(w, r, sessions.FlashError, "Unable to delete category", categoriesURL)
		return
	}

	h.logger.Info("Category deleted", zap.String("id", categoryID))
	h.metrics.RecordCategoryOperation("delete", metrics.ResultSuccess)
	h.flashAndRedirect(w, r, sessions.FlashSuccess, "Category deleted successfully", categoriesURL)
}

// parseCategoryForm reads and validates the posted form. On failure it has
// already answered the request.
func (h *AdminHandler) parseCategoryForm(w http.ResponseWriter, r *http.Request, operation string) (*CategoryForm, bool) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Failed to parse category form", zap.String("operation", operation), zap.Error(err))
		h.metrics.RecordCategoryOperation(operation, metrics.ResultInvalid)
		h.flashAndRedirect(w, r, sessions.FlashError, "Unable to read the submitted form", categoriesURL)
		return nil, false
	}

	form := &CategoryForm{Name: strings.TrimSpace(r.PostFormValue("name"))}
	if err := h.validator.Struct(form); err != nil {
		h.metrics.RecordCategoryOperation(operation, metrics.ResultInvalid)
		h.flashAndRedirect(w, r, sessions.FlashError, helpers.FirstValidationMessage(err), categoriesURL)
		return nil, false
	}
	return form, true
}
