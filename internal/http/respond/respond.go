// Package respond writes the JSON envelope every endpoint answers with.
package respond

import (
	"encoding/json"
	"net/http"

	"todoapi/internal/apperr"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, status int, msg string, data any) {
	JSON(w, status, Envelope{Success: true, Message: msg, Data: data})
}

func List(w http.ResponseWriter, msg string, data any, count int) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: msg, Data: data, Count: &count})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Message: msg})
}

// Error maps err onto its status. Classified errors keep their own message;
// anything else gets fallback. The cause text is attached to 5xx responses
// only when debug is set.
func Error(w http.ResponseWriter, err error, fallback string, debug bool) {
	status := apperr.Status(err)
	env := Envelope{Success: false, Message: apperr.MessageOf(err, fallback)}
	if debug && status >= http.StatusInternalServerError {
		env.Error = err.Error()
	}
	JSON(w, status, env)
}
