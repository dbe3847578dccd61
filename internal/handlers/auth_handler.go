package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/config"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/middleware"
	"github.com/BruksfildServices01/salon-karte/internal/usecase/account"
)

type AuthHandler struct {
	config   *config.Config
	sessions middleware.SessionSource
	signIn   *account.SignIn
	signUp   *account.SignUp
	signOut  *account.SignOut
}

func NewAuthHandler(
	cfg *config.Config,
	sessions middleware.SessionSource,
	signIn *account.SignIn,
	signUp *account.SignUp,
	signOut *account.SignOut,
) *AuthHandler {
	return &AuthHandler{
		config:   cfg,
		sessions: sessions,
		signIn:   signIn,
		signUp:   signUp,
		signOut:  signOut,
	}
}

// --------- Requests ---------

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.signIn.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "sign_in_failed")
		return
	}

	h.respondWithSession(c, http.StatusOK, out.User, out.Role, nil)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.signUp.Execute(c.Request.Context(), account.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(c, err, "sign_up_failed")
		return
	}

	h.respondWithSession(c, http.StatusCreated, out.User, karte.Role(out.Profile.Role), gin.H{
		"profile": out.Profile,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.signOut.Execute(c.Request.Context()); err != nil {
		writeError(c, err, "sign_out_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// Session reports the current session, or null when signed out.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": h.sessions.Session()})
}

func (h *AuthHandler) respondWithSession(
	c *gin.Context,
	status int,
	u auth.User,
	role karte.Role,
	extra gin.H,
) {
	token, err := middleware.GenerateToken(h.config, u.ID, u.Email, string(role))
	if err != nil {
		writeError(c, err, "failed_to_generate_token")
		return
	}

	body := gin.H{
		"user":    u,
		"role":    role,
		"session": auth.Session{User: u},
		"token":   token,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
