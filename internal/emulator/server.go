// Package emulator is an in-process stand-in for the remote auth and
// document-store collaborators. It speaks the same wire contract the real
// deployment would: bearer-token auth, per-user collection paths, REST writes
// and an SSE snapshot feed. State is in-memory only.
package emulator

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	log         zerolog.Logger
	auth        *authRegistry
	collections *collectionStore
	router      chi.Router
}

type Option func(*Server)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.log = logger
	}
}

// WithCredential pre-registers a credential token. An empty userID derives a
// stable user from the token itself.
func WithCredential(token, userID string) Option {
	return func(s *Server) {
		s.auth.registerCredential(token, userID)
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		log:         log.Logger,
		auth:        newAuthRegistry(),
		collections: newCollectionStore(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/v1/auth/anonymous", s.handleAnonymousSignIn)
	r.Post("/v1/auth/token", s.handleTokenSignIn)
	r.Route("/v1/artifacts/{appID}/users/{userID}/prompts", func(r chi.Router) {
		r.Use(s.requireOwner)
		r.Get("/subscribe", s.handleSubscribe)
		r.Post("/", s.handleInsert)
		r.Patch("/{docID}", s.handleUpdate)
		r.Delete("/{docID}", s.handleDelete)
	})
	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleAnonymousSignIn(w http.ResponseWriter, r *http.Request) {
	userID, idToken := s.auth.anonymous()

	s.log.Debug().Str("userId", userID).Msg("anonymous sign-in")
	writeJSON(w, http.StatusOK, signInResponse{UserID: userID, IDToken: idToken})
}

func (s *Server) handleTokenSignIn(w http.ResponseWriter, r *http.Request) {
	var body signInRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		writeError(w, http.StatusBadRequest, "credential token is required")
		return
	}

	userID, idToken, ok := s.auth.redeem(body.Token)
	if !ok {
		s.log.Warn().Msg("token sign-in rejected")
		writeError(w, http.StatusUnauthorized, "invalid credential token")
		return
	}

	s.log.Debug().Str("userId", userID).Msg("token sign-in")
	writeJSON(w, http.StatusOK, signInResponse{UserID: userID, IDToken: idToken})
}

// requireOwner resolves the bearer token and refuses any request whose path
// names a different user. Cross-user access is a 403 regardless of whether
// the target collection exists.
func (s *Server) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.auth.lookup(bearerToken(r))
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing or unknown bearer token")
			return
		}

		if userID != chi.URLParam(r, "userID") {
			s.log.Warn().
				Str("userId", userID).
				Str("path", r.URL.Path).
				Msg("cross-user access refused")
			writeError(w, http.StatusForbidden, "collection belongs to another user")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var body insertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed document body")
		return
	}

	col := s.collections.get(collectionPath(r))
	id := col.insert(body.Fields, time.Now())

	s.log.Debug().Str("docId", id).Str("path", collectionPath(r)).Msg("document inserted")
	writeJSON(w, http.StatusCreated, insertResponse{ID: id})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var body updateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed document body")
		return
	}

	col := s.collections.get(collectionPath(r))
	if !col.update(chi.URLParam(r, "docID"), body.Fields) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	col := s.collections.get(collectionPath(r))
	if !col.remove(chi.URLParam(r, "docID")) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSubscribe streams one SSE event per snapshot. The first event goes
// out immediately so an empty collection still resolves the client's loading
// state.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	path := collectionPath(r)
	col := s.collections.get(path)
	subID, frames := col.subscribe()
	defer col.unsubscribe(subID)

	s.log.Debug().Str("path", path).Int("sub", subID).Msg("subscription opened")
	defer s.log.Debug().Str("path", path).Int("sub", subID).Msg("subscription closed")

	for {
		select {
		case <-r.Context().Done():
			return
		case frame := <-frames:
			payload, err := json.Marshal(wireSnapshot{Documents: frame.documents})
			if err != nil {
				s.log.Error().Err(err).Msg("encode snapshot frame")
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func collectionPath(r *http.Request) string {
	return fmt.Sprintf("artifacts/%s/users/%s/prompts",
		chi.URLParam(r, "appID"), chi.URLParam(r, "userID"))
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
