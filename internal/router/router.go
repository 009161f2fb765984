package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/saulo-duarte/quizifai/internal/auth"
	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/saulo-duarte/quizifai/internal/middlewares"
	"github.com/saulo-duarte/quizifai/internal/quiz"
	"github.com/saulo-duarte/quizifai/internal/user"
)

// RouterConfig carries the handlers to mount. Nil optional handlers leave
// their routes out.
type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AuthHandler    *auth.Handler
	UserHandler    *user.Handler
	QuizHandler    *quiz.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: config.Log, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/", cfg.AIQuizHandler.Liveness)
	r.Mount("/generate-quiz", aiquiz.Routes(cfg.AIQuizHandler))

	if cfg.AuthHandler != nil {
		r.Mount("/auth", auth.Routes(cfg.AuthHandler))
	}
	if cfg.UserHandler != nil {
		r.Mount("/users", user.Routes(cfg.UserHandler))
	}
	if cfg.QuizHandler != nil {
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound, "not found")
	})
	return r
}
