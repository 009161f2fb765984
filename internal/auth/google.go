package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saulo-duarte/quizifai/internal/config"
	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	defaultRole = "user"
)

// GoogleUser is the subset of the userinfo payload a session needs.
type GoogleUser struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Handler struct {
	oauth        *oauth2.Config
	userInfoURL  string
	tokenTTL     time.Duration
	cookieDomain string
}

type Option func(*Handler)

// WithGoogleEndpoints points the code exchange and userinfo lookup elsewhere.
func WithGoogleEndpoints(tokenURL, userInfoURL string) Option {
	return func(h *Handler) {
		h.oauth.Endpoint.TokenURL = tokenURL
		h.userInfoURL = userInfoURL
	}
}

func NewHandler(google config.GoogleConfig, authCfg config.AuthConfig, opts ...Option) *Handler {
	h := &Handler{
		oauth: &oauth2.Config{
			ClientID:     google.ClientID,
			ClientSecret: google.ClientSecret,
			RedirectURL:  google.RedirectURL,
			Scopes:       []string{"openid", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   googleAuthURL,
				TokenURL:  googleTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL:  googleUserInfoURL,
		tokenTTL:     authCfg.TokenTTL,
		cookieDomain: authCfg.CookieDomain,
	}
	if h.tokenTTL <= 0 {
		h.tokenTTL = 7 * 24 * time.Hour
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GoogleLogin trades an authorization code from the browser sign-in popup
// for a session token, returned both as a cookie and in the body.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		config.Error(w, http.StatusBadRequest, "authorization code is required")
		return
	}

	gu, err := h.fetchGoogleUser(r.Context(), req.Code)
	if err != nil {
		log.WithError(err).Warn("Google sign-in failed")
		config.Error(w, http.StatusUnauthorized, "google sign-in failed")
		return
	}

	token, err := GenerateJWT(Identity{
		UserID:  gu.Sub,
		Role:    defaultRole,
		Name:    gu.Name,
		Picture: gu.Picture,
	}, h.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		config.Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	expiresAt := time.Now().Add(h.tokenTTL)
	http.SetCookie(w, h.sessionCookie(token, int(h.tokenTTL.Seconds())))

	log.WithField("user_id", gu.Sub).Info("User signed in")
	config.JSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *Handler) fetchGoogleUser(ctx context.Context, code string) (*GoogleUser, error) {
	tok, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.oauth.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var gu GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, fmt.Errorf("decoding userinfo: %w", err)
	}
	if gu.Sub == "" {
		return nil, errors.New("userinfo has no subject")
	}
	return &gu, nil
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
