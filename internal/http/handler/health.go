package handler

import (
	"net/http"
	"time"

	"todoapi/internal/http/respond"
)

type healthResp struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, healthResp{
		Success:   true,
		Message:   "Authorization-Based TODO API is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Fail(w, http.StatusNotFound, "Route not found.")
}
