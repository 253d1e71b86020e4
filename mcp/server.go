// Package mcp serves the document engine as Model Context Protocol tools.
//
// The server speaks JSON-RPC 2.0, one message per line, over any reader and
// writer pair (stdio in production). Only the tools capability is
// implemented: tools/list and tools/call, plus initialize and ping.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ProtocolVersion is the MCP revision the server implements.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	codeParse          = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server dispatches JSON-RPC requests to registered tools.
type Server struct {
	name    string
	version string
	tools   map[string]Tool
	log     *zap.Logger

	mu  sync.Mutex
	out io.Writer
}

// Tool is one callable operation.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     ToolHandler    `json:"-"`
}

// ToolHandler runs a tool with its raw JSON arguments.
type ToolHandler func(ctx context.Context, args json.RawMessage) (ToolResult, error)

// ToolResult is what a tool returns to the client.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is a piece of a tool result.
type ContentBlock struct {
	Type     string `json:"type"` // "text" or "resource"
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64
}

// Text returns a result holding one formatted text block.
func Text(format string, args ...any) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf(format, args...)}}}
}

type request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewServer returns a server announcing itself as name/version.
func NewServer(name, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		name:    name,
		version: version,
		tools:   make(map[string]Tool),
		log:     log,
	}
}

// AddTool registers t, replacing a tool of the same name.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is done. Requests are handled one at a time.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.mu.Lock()
	s.out = out
	s.mu.Unlock()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 1<<20), 16<<20)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.fail(nil, codeParse, "Parse error", err.Error())
			continue
		}
		s.handle(ctx, req)
	}
	return sc.Err()
}

func (s *Server) handle(ctx context.Context, req request) {
	switch req.Method {
	case "initialize":
		s.reply(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": s.name, "version": s.version},
		})
	case "notifications/initialized", "initialized":
	case "ping":
		s.reply(req.ID, map[string]any{})
	case "tools/list":
		s.reply(req.ID, map[string]any{"tools": s.list()})
	case "tools/call":
		s.call(ctx, req)
	default:
		s.fail(req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

func (s *Server) list() []Tool {
	tools := make([]Tool, 0, len(s.tools))
	for _, t := range s.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

func (s *Server) call(ctx context.Context, req request) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.fail(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		s.fail(req.ID, codeInvalidParams, "Unknown tool", params.Name)
		return
	}

	res, err := tool.Handler(ctx, params.Arguments)
	if err != nil {
		s.log.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
		res = Text("Error: %v", err)
		res.IsError = true
	}
	s.reply(req.ID, res)
}

func (s *Server) reply(id *json.RawMessage, result any) {
	s.send(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) fail(id *json.RawMessage, code int, msg string, data any) {
	s.send(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg, Data: data}})
}

func (s *Server) send(resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("encoding response", zap.Error(err))
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(data); err != nil {
		s.log.Error("writing response", zap.Error(err))
	}
}
