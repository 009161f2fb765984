package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API needs at startup. Optional features
// (saved quizzes, sign-in) stay disabled while their settings are empty.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Quiz     QuizConfig
	Upload   UploadConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Google   GoogleConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
}

// QuizConfig holds the defaults applied when a request leaves a field out.
type QuizConfig struct {
	DefaultQuestions  int
	MaxQuestions      int
	DefaultDifficulty string
}

type UploadConfig struct {
	MaxBytes int64
}

type DatabaseConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieDomain string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads a .env file when one exists and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("PORT", 5000),
		},
		AI: AIConfig{
			GeminiAPIKey: envStr("GEMINI_API_KEY", ""),
			Model:        envStr("GEMINI_MODEL", "gemini-1.5-flash-002"),
		},
		Quiz: QuizConfig{
			DefaultQuestions:  envInt("QUIZ_DEFAULT_QUESTIONS", 10),
			MaxQuestions:      envInt("QUIZ_MAX_QUESTIONS", 50),
			DefaultDifficulty: envStr("QUIZ_DEFAULT_DIFFICULTY", "easy"),
		},
		Upload: UploadConfig{
			MaxBytes: int64(envInt("UPLOAD_MAX_BYTES", 5<<20)),
		},
		Database: DatabaseConfig{
			DSN: envStr("DATABASE_DSN", ""),
		},
		Auth: AuthConfig{
			JWTSecret:    envStr("JWT_SECRET", ""),
			TokenTTL:     time.Duration(envInt("JWT_TTL_HOURS", 24*7)) * time.Hour,
			CookieDomain: envStr("COOKIE_DOMAIN", ""),
		},
		Google: GoogleConfig{
			ClientID:     envStr("GOOGLE_CLIENT_ID", ""),
			ClientSecret: envStr("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  envStr("GOOGLE_REDIRECT_URL", "postmessage"),
		},
		CORS: CORSConfig{
			AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  envStr("LOG_LEVEL", "info"),
			Format: envStr("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.AI.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	if c.Quiz.DefaultQuestions <= 0 {
		return fmt.Errorf("QUIZ_DEFAULT_QUESTIONS must be positive, got %d", c.Quiz.DefaultQuestions)
	}
	if c.Quiz.MaxQuestions < c.Quiz.DefaultQuestions {
		return fmt.Errorf("QUIZ_MAX_QUESTIONS (%d) is below QUIZ_DEFAULT_QUESTIONS (%d)", c.Quiz.MaxQuestions, c.Quiz.DefaultQuestions)
	}
	if c.Google.ClientID != "" && c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when Google sign-in is configured")
	}
	return nil
}

func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

func (c *Config) SavedQuizzesEnabled() bool {
	return c.Database.DSN != "" && c.AuthEnabled()
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
