package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"todoapi/internal/apperr"
	"todoapi/internal/auth"
	"todoapi/internal/http/respond"
)

type AuthHandler struct {
	Svc   *auth.Service
	Log   logrus.FieldLogger
	Debug bool
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err, "Error creating user account.")
		return
	}

	u, err := h.Svc.Signup(r.Context(), auth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err, "Error creating user account.")
		return
	}

	respond.Success(w, http.StatusCreated, "User registered successfully.", u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err, "Error during login.")
		return
	}

	res, err := h.Svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(w, r, err, "Error during login.")
		return
	}

	respond.Success(w, http.StatusOK, "Login successful.", res)
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if apperr.Status(err) >= http.StatusInternalServerError {
		h.Log.WithError(err).WithField("path", r.URL.Path).Error(fallback)
	}
	respond.Error(w, err, fallback, h.Debug)
}
