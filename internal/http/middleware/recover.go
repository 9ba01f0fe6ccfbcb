package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"todoapi/internal/http/respond"
)

// Recover turns a handler panic into a 500 envelope. The stack goes to the
// log always and to the client only when debug is set.
func Recover(log logrus.FieldLogger, debugMode bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				log.WithFields(logrus.Fields{
					"request_id": chimw.GetReqID(r.Context()),
					"panic":      fmt.Sprint(rec),
					"stack":      string(stack),
				}).Error("handler panic")

				env := respond.Envelope{Success: false, Message: "Internal server error."}
				if debugMode {
					env.Error = fmt.Sprintf("%v\n%s", rec, stack)
				}
				respond.JSON(w, http.StatusInternalServerError, env)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
