package controllers

import (
	"net/http"

	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/bind"
	"github.com/trixtech/trixtech/pkg/resource"
	"github.com/trixtech/trixtech/pkg/response"
)

type registerInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"nullable,in=customer,admin"`
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthController serves /api/auth/*.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Register(in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, resource.Map{
		"token": token,
		"user":  userResource(user),
	})
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.auth.Login(in.Email, in.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, resource.Map{
		"token": token,
		"user":  userResource(user),
	})
}
