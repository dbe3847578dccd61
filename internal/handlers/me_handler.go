package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/httpresp"
	"github.com/BruksfildServices01/salon-karte/internal/usecase/account"
)

type MeHandler struct {
	loadProfile *account.LoadProfile
}

func NewMeHandler(loadProfile *account.LoadProfile) *MeHandler {
	return &MeHandler{loadProfile: loadProfile}
}

// GetMe returns the profile of the signed-in user. A missing or inactive
// profile ends the session and answers 401.
func (h *MeHandler) GetMe(c *gin.Context) {
	profile, err := h.loadProfile.Execute(c.Request.Context())
	if err != nil {
		if errors.Is(err, account.ErrNoSession) {
			httperr.Unauthorized(c, "no_session", "ログインしていません。")
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.Unauthorized(c, code, businessMessages[code])
			return
		}
		writeError(c, err, "failed_to_load_profile")
		return
	}

	httpresp.OK(c, gin.H{"user": profile})
}

