package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/erauner12/mongobridge/internal/tools"
)

const protocolVersion = "2025-03-26"

// HTTPServer serves the MCP Streamable HTTP transport: JSON-RPC 2.0 over
// POST /mcp, with sessions established by initialize. It is an alternative
// frontend to the same tool registry the stdio transport uses.
type HTTPServer struct {
	serverName     string
	serverVersion  string
	allowedOrigins []string
	registry       *tools.Registry
	toolCtx        *tools.ToolContext
	sessionMgr     *SessionManager
	httpServer     *http.Server
}

// NewHTTPServer creates the HTTP transport in front of a tool registry
func NewHTTPServer(name, version string, allowedOrigins []string, registry *tools.Registry, toolCtx *tools.ToolContext) *HTTPServer {
	return &HTTPServer{
		serverName:     name,
		serverVersion:  version,
		allowedOrigins: allowedOrigins,
		registry:       registry,
		toolCtx:        toolCtx,
		sessionMgr:     NewSessionManager(24 * time.Hour),
	}
}

// Routes builds the router
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/mcp", s.handleMCPPost)
	r.Get("/mcp", s.handleMCPGet)
	r.Delete("/mcp", s.handleMCPDelete)

	return r
}

// Start starts the HTTP server and blocks until it stops
func (s *HTTPServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     s.Routes(),
		ReadTimeout: 30 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting MCP HTTP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleMCPPost handles POST /mcp (JSON-RPC requests)
func (s *HTTPServer) handleMCPPost(w http.ResponseWriter, r *http.Request) {
	// DNS rebinding protection
	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	if !validateProtocolVersion(r) {
		http.Error(w, "unsupported protocol version", http.StatusBadRequest)
		return
	}

	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, nil, ParseError, "invalid JSON")
		return
	}

	if req.JSONRPC != "2.0" {
		s.sendError(w, req.ID, InvalidRequest, "invalid jsonrpc version")
		return
	}

	// Notifications get acknowledged without a response body
	if req.IsNotification() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	// initialize creates the session
	if req.Method == "initialize" {
		s.handleInitialize(w, &req)
		return
	}

	// All other requests require a session
	sessionID := r.Header.Get("Mcp-Session-Id")
	if sessionID == "" {
		s.sendError(w, req.ID, InvalidRequest, "missing Mcp-Session-Id header")
		return
	}

	session, err := s.sessionMgr.GetSession(sessionID)
	if err != nil {
		s.sendError(w, req.ID, InvalidRequest, "session not found")
		return
	}
	s.sessionMgr.UpdateLastSeen(session.ID)

	s.handleJSONRPC(w, r, &req, session)
}

// handleInitialize creates a session and returns server capabilities
func (s *HTTPServer) handleInitialize(w http.ResponseWriter, req *JSONRPCRequest) {
	session := s.sessionMgr.CreateSession()

	log.Info().Str("sessionId", session.ID).Msg("created new MCP session")

	w.Header().Set("Mcp-Session-Id", session.ID)

	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.serverName,
			"version": s.serverVersion,
		},
	}
	if s.toolCtx != nil && s.toolCtx.DefaultDatabase != "" {
		result["serverInfo"].(map[string]any)["defaultDatabase"] = s.toolCtx.DefaultDatabase
	}

	s.sendResult(w, req.ID, result)
}

// handleJSONRPC routes JSON-RPC requests to the registry
func (s *HTTPServer) handleJSONRPC(w http.ResponseWriter, r *http.Request, req *JSONRPCRequest, session *MCPSession) {
	logger := log.With().
		Str("sessionId", session.ID).
		Str("method", req.Method).
		Logger()

	switch req.Method {
	case "tools/list":
		s.sendResult(w, req.ID, map[string]any{
			"tools": s.registry.List(),
		})

	case "tools/call":
		var callReq tools.CallRequest
		if err := json.Unmarshal(req.Params, &callReq); err != nil {
			s.sendError(w, req.ID, InvalidParams, "invalid tool call parameters")
			return
		}

		logger.Debug().Str("tool", callReq.Name).Msg("dispatching tool call")

		// The registry produces the envelope for every outcome, including
		// errors; those are results, not JSON-RPC protocol errors.
		result := s.registry.Call(r.Context(), s.toolCtx, callReq)
		s.sendResult(w, req.ID, result)

	case "ping":
		s.sendResult(w, req.ID, map[string]any{})

	default:
		s.sendError(w, req.ID, MethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

// handleMCPGet would serve the server-to-client SSE stream. This adapter
// sends no server-initiated messages, so the stream is not offered.
func (s *HTTPServer) handleMCPGet(w http.ResponseWriter, r *http.Request) {
	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}
	if !validateProtocolVersion(r) {
		http.Error(w, "unsupported protocol version", http.StatusBadRequest)
		return
	}
	http.Error(w, "server-initiated streaming not supported", http.StatusMethodNotAllowed)
}

// handleMCPDelete closes a session
func (s *HTTPServer) handleMCPDelete(w http.ResponseWriter, r *http.Request) {
	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	sessionID := r.Header.Get("Mcp-Session-Id")
	if sessionID == "" {
		http.Error(w, "missing session ID", http.StatusBadRequest)
		return
	}

	s.sessionMgr.DeleteSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// validateProtocolVersion checks the Mcp-Protocol-Version header. A missing
// header is treated as the current version, since clients negotiate the
// version during initialize before they start sending it.
func validateProtocolVersion(r *http.Request) bool {
	version := r.Header.Get("Mcp-Protocol-Version")
	return version == "" || version == protocolVersion || version == "2024-11-05"
}

// validateOrigin checks the request Origin header against the allowlist.
// An empty allowlist accepts everything, which is only safe for local use.
func (s *HTTPServer) validateOrigin(r *http.Request) bool {
	if len(s.allowedOrigins) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		// Browser requests always carry Origin; requests without it are
		// server-to-server and rejected once an allowlist is configured.
		log.Debug().Msg("request missing Origin header")
		return false
	}

	for _, allowed := range s.allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	log.Warn().
		Str("origin", origin).
		Strs("allowedOrigins", s.allowedOrigins).
		Msg("origin not in allowlist")
	return false
}

func (s *HTTPServer) sendError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are still HTTP 200

	response := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON-RPC error response")
	}
}

func (s *HTTPServer) sendResult(w http.ResponseWriter, id json.RawMessage, result any) {
	w.Header().Set("Content-Type", "application/json")

	response := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  mustMarshal(result),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON-RPC response")
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal JSON-RPC result")
	}
	return data
}
