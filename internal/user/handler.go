package user

import (
	"net/http"

	"github.com/saulo-duarte/quizifai/internal/auth"
	"github.com/saulo-duarte/quizifai/internal/config"
)

// Profile is what the client shows for the signed-in user.
type Profile struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

func ProfileFromClaims(c *auth.Claims) Profile {
	return Profile{
		UID:         c.UserID,
		DisplayName: c.Name,
		PhotoURL:    c.Picture,
	}
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("Profile requested without a session")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	config.JSON(w, http.StatusOK, ProfileFromClaims(claims))
}
