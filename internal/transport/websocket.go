// SPDX-License-Identifier: MIT
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"bitwise/internal/config"
	"bitwise/internal/eval"
	"bitwise/internal/log"

	"github.com/gorilla/websocket"
)

// WebSocketServer answers evaluation requests over WebSocket. Each text
// message is one JSON eval.Request and is answered by exactly one JSON
// eval.Response, in order, on the same connection.
type WebSocketServer struct {
	addr      string
	path      string
	handler   Handler
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex
	server    *http.Server
}

// NewWebSocketServer creates a server for cfg that dispatches to handler.
// Nothing listens until ListenAndServe is called.
func NewWebSocketServer(cfg config.ServerConfig, handler Handler) *WebSocketServer {
	wss := &WebSocketServer{
		addr:    cfg.Address,
		path:    cfg.Path,
		handler: handler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local tool, any origin may connect
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(wss.path, wss.handleWebSocket)
	wss.server = &http.Server{
		Addr:    wss.addr,
		Handler: mux,
	}
	return wss
}

// Handler returns the HTTP handler serving the upgrade path.
func (wss *WebSocketServer) Handler() http.Handler {
	return wss.server.Handler
}

// ListenAndServe blocks serving connections until Close is called, in which
// case it returns nil.
func (wss *WebSocketServer) ListenAndServe() error {
	log.Infof("WebSocketServer: Listening on ws://%s%s", wss.addr, wss.path)
	if err := wss.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("websocket server: %w", err)
	}
	return nil
}

// ClientCount returns the number of open connections.
func (wss *WebSocketServer) ClientCount() int {
	wss.clientsMu.Lock()
	defer wss.clientsMu.Unlock()
	return len(wss.clients)
}

// handleWebSocket upgrades the HTTP connection and serves it until the
// client goes away.
func (wss *WebSocketServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wss.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("WebSocketServer: Upgrade error: %v", err)
		return
	}

	wss.clientsMu.Lock()
	wss.clients[conn] = true
	total := len(wss.clients)
	wss.clientsMu.Unlock()
	log.Infof("WebSocketServer: Client %s connected, total: %d", conn.RemoteAddr(), total)

	defer wss.drop(conn)
	wss.serve(conn)
}

// serve runs the read-evaluate-write loop of one connection. A message that
// is not a valid request gets an error response and the loop continues.
func (wss *WebSocketServer) serve(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("WebSocketServer: Read error: %v", err)
			}
			return
		}

		var resp eval.Response
		var req eval.Request
		if err := json.Unmarshal(data, &req); err != nil {
			resp = eval.Response{Error: fmt.Sprintf("malformed request: %v", err)}
		} else {
			resp = wss.handler.Handle(req)
		}

		if err := conn.WriteJSON(resp); err != nil {
			log.Warnf("WebSocketServer: Error sending to client: %v", err)
			return
		}
	}
}

func (wss *WebSocketServer) drop(conn *websocket.Conn) {
	wss.clientsMu.Lock()
	_, known := wss.clients[conn]
	delete(wss.clients, conn)
	total := len(wss.clients)
	wss.clientsMu.Unlock()

	if known {
		conn.Close()
		log.Infof("WebSocketServer: Client disconnected, total: %d", total)
	}
}

// Close shuts down the server and every open connection.
func (wss *WebSocketServer) Close() error {
	log.Infof("WebSocketServer: Closing server")

	wss.clientsMu.Lock()
	for client := range wss.clients {
		client.Close()
	}
	wss.clients = make(map[*websocket.Conn]bool)
	wss.clientsMu.Unlock()

	return wss.server.Close()
}
