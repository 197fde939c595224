package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"icona/internal/http/handlers"
	"icona/internal/middleware"
)

type RouterConfig struct {
	JWTSecret       string
	AllowedOrigins  []string
	RateLimitPerMin int
	Logger          zerolog.Logger
}

func NewRouter(app *handlers.App, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(cfg.Logger),
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)
		r.Get("/catalog", app.Catalog)
		r.Post("/prompts/meta", app.PromptMeta)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))

			r.Get("/credits", app.CreditsGet)
			r.Post("/credits/weekly", app.CreditsWeekly)
			r.Get("/usage/summary", app.UsageSummary)

			// Everything below reaches a paid model.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

				r.Post("/prompts/final", app.PromptFinal)
				r.Post("/suggestions", app.Suggestions)
				r.Post("/captions", app.Captions)
				r.Route("/images", func(r chi.Router) {
					r.Post("/generate", app.ImagesGenerate)
					r.Post("/preset/{preset_id}", app.ImagesPreset)
					r.Post("/refine", app.ImagesRefine)
				})
			})
		})
	})

	return r
}
