package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"todoapi/internal/apperr"
	"todoapi/internal/auth"
	"todoapi/internal/http/respond"
	"todoapi/internal/todo"
)

type TodoHandler struct {
	Svc   *todo.Service
	Log   logrus.FieldLogger
	Debug bool
}

type createTodoReq struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// nil means the field was absent from the body.
type updateTodoReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	var req createTodoReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err, "Error creating todo.")
		return
	}

	t, err := h.Svc.Create(r.Context(), uid, todo.CreateInput{Title: req.Title, Completed: req.Completed})
	if err != nil {
		h.fail(w, r, err, "Error creating todo.")
		return
	}

	respond.Success(w, http.StatusCreated, "Todo created successfully.", t)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	todos, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		h.fail(w, r, err, "Error retrieving todos.")
		return
	}

	respond.List(w, "Todos retrieved successfully.", todos, len(todos))
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := todoID(r)
	if err != nil {
		h.fail(w, r, err, "Error updating todo.")
		return
	}

	var req updateTodoReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err, "Error updating todo.")
		return
	}

	t, err := h.Svc.Update(r.Context(), uid, id, todo.UpdateInput{Title: req.Title, Completed: req.Completed})
	if err != nil {
		h.fail(w, r, err, "Error updating todo.")
		return
	}

	respond.Success(w, http.StatusOK, "Todo updated successfully.", t)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := todoID(r)
	if err != nil {
		h.fail(w, r, err, "Error deleting todo.")
		return
	}

	if err := h.Svc.Delete(r.Context(), uid, id); err != nil {
		h.fail(w, r, err, "Error deleting todo.")
		return
	}

	respond.Success(w, http.StatusOK, "Todo deleted successfully.", nil)
}

func (h *TodoHandler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if apperr.Status(err) >= http.StatusInternalServerError {
		h.Log.WithError(err).WithField("path", r.URL.Path).Error(fallback)
	}
	respond.Error(w, err, fallback, h.Debug)
}

// callerID answers 401 when the route was reached without verified claims.
func callerID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok || uid == 0 {
		respond.Fail(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return 0, false
	}
	return uid, true
}

func todoID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("Invalid todo ID.")
	}
	return id, nil
}
