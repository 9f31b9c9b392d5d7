// Package registry is a small demonstration HTTP/WS service that exercises
// the core identity API for hosts that want a network-reachable
// generate/validate endpoint. It is host tooling, not part of the
// specified identity core.
package registry

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/meshveil/identity/pkg/genpool"
	"github.com/meshveil/identity/pkg/identity"
)

// Server exposes the registry's HTTP and websocket routes.
type Server struct {
	notifier notifier
	upgrader websocket.Upgrader

	mu    sync.Mutex
	store map[string]*identity.Identity
}

// NewServer builds a Server ready to be handed to http.Serve or mounted
// under a ServeMux.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		store: make(map[string]*identity.Identity),
	}
}

// Handler builds the route table described in SPEC_FULL.md §4.M.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/identity/generate", s.generateRoute)
	mux.HandleFunc("/v1/identity/validate", s.validateRoute)
	mux.HandleFunc("/v1/identity/lookup", s.lookupRoute)
	mux.HandleFunc("/v1/identity/ws", s.wsRoute)
	return mux
}

// ListenAndServe starts the registry's HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.WithField("addr", addr).Info("starting registry server")
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) generateRoute(w http.ResponseWriter, req *http.Request) {
	reqID := uuid.New()
	logger := log.WithField("request", reqID.String())

	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	variant, err := parseVariant(req.FormValue("variant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	started := time.Now()
	ids := genpool.Run(genpool.Options{
		Variant: variant,
		Count:   1,
		DidTick: func(_ time.Time, _ *identity.Identity, accepted int, attempts uint64) {
			s.notifier.notify(notificationGenerationTick, map[string]interface{}{
				"request":  reqID,
				"accepted": accepted,
				"attempts": attempts,
			})
		},
	})
	if len(ids) == 0 {
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}

	id := ids[0]

	s.mu.Lock()
	s.store[id.Address().String()] = id
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"variant": id.Variant().String(),
		"address": id.Address().String(),
		"elapsed": time.Since(started),
	}).Info("generated identity")

	s.notifier.notify(notificationGenerated, map[string]interface{}{
		"request": reqID,
		"address": id.Address().String(),
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"identity": id.String(),
	})
}

func (s *Server) validateRoute(w http.ResponseWriter, req *http.Request) {
	text := req.FormValue("id")
	if text == "" {
		http.Error(w, "missing parameter \"id\"", http.StatusBadRequest)
		return
	}

	id, err := identity.FromString(text)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": id.Validate()})
}

func (s *Server) lookupRoute(w http.ResponseWriter, req *http.Request) {
	addr := req.FormValue("address")
	if addr == "" {
		http.Error(w, "missing parameter \"address\"", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	id, ok := s.store[addr]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "unknown address", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(id.PublicString()))
}

func (s *Server) wsRoute(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.WithError(err).Debug("websocket upgrade failed")
		return
	}
	s.notifier.addObserver(conn)
}

func parseVariant(s string) (identity.Variant, error) {
	if s == "" {
		return identity.C25519, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, identity.ErrUnsupportedVariant
	}
	v := identity.Variant(n)
	if !v.Valid() {
		return 0, identity.ErrUnsupportedVariant
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Debug("failed writing json response")
	}
}
