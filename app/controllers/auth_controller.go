package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/bind"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// AuthController exposes the admin login endpoint.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		logger.WithCtx(r.Context()).Error("login", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
