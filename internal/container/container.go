package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/saulo-duarte/quizifai/internal/auth"
	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/saulo-duarte/quizifai/internal/quiz"
	"github.com/saulo-duarte/quizifai/internal/router"
	"github.com/saulo-duarte/quizifai/internal/user"
)

type Container struct {
	Config          *config.Config
	AIQuizContainer *aiquiz.AIQuizContainer
	AuthHandler     *auth.Handler
	UserHandler     *user.Handler
	QuizContainer   *quiz.QuizContainer
}

// New loads configuration and wires every feature that is configured.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config.InitLogger(cfg.Log)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	c := &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
	}

	if cfg.AuthEnabled() {
		auth.Init(cfg.Auth.JWTSecret)
		c.UserHandler = user.NewHandler()
		if cfg.Google.ClientID != "" {
			c.AuthHandler = auth.NewHandler(cfg.Google, cfg.Auth)
		}
	}

	if cfg.SavedQuizzesEnabled() {
		if err := config.Connect(ctx, cfg.Database.DSN); err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		c.QuizContainer, err = quiz.NewQuizContainer(config.DB)
		if err != nil {
			return nil, err
		}
	}

	config.Log.WithFields(map[string]any{
		"model":         cfg.AI.Model,
		"auth":          c.AuthHandler != nil,
		"saved_quizzes": c.QuizContainer != nil,
	}).Info("Container ready")
	return c, nil
}

func (c *Container) Router() *chi.Mux {
	rc := router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		AuthHandler:    c.AuthHandler,
		UserHandler:    c.UserHandler,
		AllowedOrigins: c.Config.CORS.AllowedOrigins,
	}
	if c.QuizContainer != nil {
		rc.QuizHandler = c.QuizContainer.Handler
	}
	return router.New(rc)
}
