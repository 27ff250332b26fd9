// Package httpapi exposes the roast pipeline over HTTP and WebSocket. Both
// surfaces are thin adapters: they parse their transport's request shape,
// call the shared pipeline, and serialize the result or error back out.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"wahalabot/pkg/roast"
)

const (
	defaultLevel  = roast.LevelMedium
	defaultGender = roast.GenderMale
)

type Server struct {
	svc *roast.Service
}

func NewServer(svc *roast.Service) *Server {
	return &Server{svc: svc}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogMiddleware)
	r.HandleFunc("/", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/roast", s.handleRoast).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	return r
}

// NewHTTPServer wraps a handler in an http.Server with sane timeouts. The
// generous write timeout covers slow completion calls; WebSocket connections
// hijack the underlying conn and are not affected by it.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
}

type roastRequest struct {
	UserInput string `json:"user_input"`
	Level     string `json:"level"`
	Gender    string `json:"gender"`
}

type roastResponse struct {
	Roast string `json:"roast,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Bot is running"})
}

func (s *Server) handleRoast(w http.ResponseWriter, r *http.Request) {
	var req roastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, roastResponse{Error: "Invalid request body."})
		return
	}

	reply, err := s.svc.Roast(r.Context(), toServiceRequest(req.UserInput, req.Level, req.Gender))
	if err != nil {
		writeJSON(w, statusFor(err), roastResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, roastResponse{Roast: reply})
}

// toServiceRequest applies the surface defaults: level "medium" and gender
// "male" when omitted. Unknown values pass through for the pipeline to
// reject.
func toServiceRequest(text, level, gender string) roast.Request {
	if level == "" {
		level = string(defaultLevel)
	}
	if gender == "" {
		gender = string(defaultGender)
	}
	return roast.Request{
		Text:   text,
		Level:  roast.Level(level),
		Gender: roast.Gender(gender),
	}
}

func statusFor(err error) int {
	if roast.IsInvalidInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
