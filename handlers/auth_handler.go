package handlers

import (
	"community-api/helper"
	"community-api/models"
	"community-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: httpHelper}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "", "Invalid request body.", models.CodeInvalidInput)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	user, token, err := h.authService.Signup(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, user, gin.H{"access_token": token})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "", "Invalid request body.", models.CodeInvalidInput)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	user, token, err := h.authService.Signin(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, user, gin.H{"access_token": token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUserByID(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}
