package app

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/config"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Recover from handler panics with a 500 instead of dropping the connection.
	r.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{})))

	// Compress responses when the client accepts it.
	r.Use(handlers.CompressHandler)

	// Request logging at debug level.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Debugf("%s %s", req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Errorln(v...)
}
