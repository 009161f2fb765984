package auth

import (
	"net/http"

	"github.com/saulo-duarte/quizifai/internal/config"
)

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
