package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-category-admin/app/configs"
	"github.com/Rakhulsr/go-category-admin/app/handlers/admin"
	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"github.com/Rakhulsr/go-category-admin/app/middlewares"
	"github.com/Rakhulsr/go-category-admin/app/repositories"
	"github.com/Rakhulsr/go-category-admin/app/services"
	"github.com/Rakhulsr/go-category-admin/app/utils/metrics"
	"github.com/Rakhulsr/go-category-admin/app/utils/renderer"
	"github.com/Rakhulsr/go-category-admin/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB      *gorm.DB
	Env     configs.ENV
	Keys    *configs.SessionKeys
	Logger  *zap.Logger
	Metrics *metrics.Collector
}

func NewRouter(deps Dependencies) http.Handler {
	production := deps.Env.IsProduction()

	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	categorySvc := services.NewCategoryService(categoryRepo, deps.Logger)
	sessionStore := sessions.NewCookieSessionStore(deps.Logger, production, deps.Keys.AuthKey, deps.Keys.EncKey)

	adminHandler := admin.NewAdminHandler(
		renderer.New(!production),
		helpers.NewValidator(),
		categorySvc,
		sessionStore,
		deps.Metrics,
		deps.Logger,
	)

	adminRouter := mux.NewRouter()
	adminRouter.Use(middlewares.MetricsMiddleware(deps.Metrics))
	adminHandler.RegisterRoutes(adminRouter)

	protect := csrf.Protect(
		deps.Keys.CSRFKey,
		csrf.Secure(production),
		csrf.Path("/admin"),
		csrf.FieldName("csrf_token"),
	)
	csrfHandler := protect(adminRouter)
	if !production {
		csrfHandler = middlewares.PlaintextHTTPMiddleware(csrfHandler)
	}
	adminChain := middlewares.AdminAuthMiddleware(deps.Env.AdminUser, deps.Env.AdminPasswordHash, deps.Logger)(csrfHandler)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", healthz(deps.DB, deps.Logger)).Methods(http.MethodGet)
	router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	router.Handle("/", http.RedirectHandler("/admin", http.StatusFound)).Methods(http.MethodGet)
	router.PathPrefix("/admin").Handler(adminChain)

	return middlewares.MethodOverrideMiddleware(middlewares.RequestLogger(deps.Logger)(router))
}

func healthz(db *gorm.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			logger.Error("healthz: database unreachable", zap.Error(err))
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
