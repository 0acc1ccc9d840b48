package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

// A StatusFunc reports the current state of whatever is being animated.
type StatusFunc func() interface{}

// Api serves the client pages and a JSON status endpoint.
type Api struct {
	addr      string
	clientDir string
	status    StatusFunc
}

// NewApi creates an instance of an Api.
func NewApi(addr string, clientDir string, status StatusFunc) *Api {
	a := new(Api)
	a.addr = addr
	a.clientDir = clientDir
	a.status = status
	return a
}

// Handler routes /status to the status report and everything else to the
// client pages.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.Handle("/", http.FileServer(http.Dir(a.clientDir)))
	return mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.status()); err != nil {
		log.Printf("Writing status: %v", err)
	}
}

// Serve listens until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	server := &http.Server{Addr: a.addr, Handler: a.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", a.addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
