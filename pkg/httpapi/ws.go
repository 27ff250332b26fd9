package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from arbitrary pages; there is no
	// origin-based auth on this surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsRequest struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Gender  string `json:"gender"`
}

// handleWS serves one request/reply cycle per inbound JSON message until the
// peer disconnects. Errors are replied in-band; only a broken connection
// ends the loop.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var resp roastResponse
		reply, err := s.svc.Roast(r.Context(), toServiceRequest(req.Message, req.Level, req.Gender))
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Roast = reply
		}

		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}
