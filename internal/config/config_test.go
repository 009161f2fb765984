package config_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizifai/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "QUIZ_DEFAULT_QUESTIONS",
		"QUIZ_MAX_QUESTIONS", "QUIZ_DEFAULT_DIFFICULTY", "UPLOAD_MAX_BYTES",
		"DATABASE_DSN", "JWT_SECRET", "JWT_TTL_HOURS", "GOOGLE_CLIENT_ID",
		"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash-002", cfg.AI.Model)
	assert.Equal(t, 10, cfg.Quiz.DefaultQuestions)
	assert.Equal(t, 50, cfg.Quiz.MaxQuestions)
	assert.Equal(t, "easy", cfg.Quiz.DefaultDifficulty)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.SavedQuizzesEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("QUIZ_DEFAULT_QUESTIONS", "20")
	t.Setenv("QUIZ_DEFAULT_DIFFICULTY", "medium")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://quizifai.app ,")
	t.Setenv("DATABASE_DSN", "postgres://localhost/quizifai")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Quiz.DefaultQuestions)
	assert.Equal(t, "medium", cfg.Quiz.DefaultDifficulty)
	assert.Equal(t, []string{"http://localhost:5173", "https://quizifai.app"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.SavedQuizzesEnabled())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			AI:   config.AIConfig{GeminiAPIKey: "key"},
			Quiz: config.QuizConfig{DefaultQuestions: 10, MaxQuestions: 50},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"missing api key", func(c *config.Config) { c.AI.GeminiAPIKey = "" }, true},
		{"zero default questions", func(c *config.Config) { c.Quiz.DefaultQuestions = 0 }, true},
		{"max below default", func(c *config.Config) { c.Quiz.MaxQuestions = 5 }, true},
		{"google without jwt secret", func(c *config.Config) { c.Google.ClientID = "client" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestError_WritesJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()

	config.Error(rec, http.StatusBadRequest, "Topic is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Topic is required"}`, rec.Body.String())
}
