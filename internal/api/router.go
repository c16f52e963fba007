package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pradiptars/stockpoint-be/internal/api/handlers"
	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/services"
)

// defaultUpstream is the target of the outbound HTTP example routes.
const defaultUpstream = "https://jsonplaceholder.typicode.com"

// NewRouter creates and configures a new Chi router.
func NewRouter(
	codec *auth.TokenCodec,
	authService services.AuthServiceProvider,
	userService services.UserServiceProvider,
	categoryService services.CategoryServiceProvider,
	fileService services.FileServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	fileHandler := handlers.NewFileHandler(fileService)
	proxyHandler := handlers.NewProxyHandler(defaultUpstream)

	requireAuth := auth.RequireAuth(codec)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello World"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.With(requireAuth).Post("/authenticated", authHandler.Authenticated)
			r.With(requireAuth).Post("/change-password", authHandler.ChangePassword)
		})

		r.Route("/category", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", categoryHandler.GetAll)
			r.Post("/", categoryHandler.Create)
			r.Post("/search-paginate", categoryHandler.SearchPaginate)
			r.Put("/{id}", categoryHandler.Update)
			r.Delete("/{id}", categoryHandler.Delete)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", userHandler.Create)
			r.Post("/search-paginate", userHandler.SearchPaginate)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Get("/http", proxyHandler.GetPosts)
		r.Post("/http", proxyHandler.PostTodo)

		r.Route("/files/user", func(r chi.Router) {
			r.Post("/", fileHandler.Upload)
			r.Get("/image/{filename}", fileHandler.GetImage)
			r.Delete("/delete/{filename}", fileHandler.DeleteImage)
		})
	})

	return r
}
