// Package langserver implements a JSON-RPC 2.0 language server exposing
// parse diagnostics and command completion for pickle source files,
// grounded on the teacher's jsonrpc2/go-lsp wiring (SPEC_FULL.md §4.13).
package langserver

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"tcl9.dev/pickle/pkg/diag"
	"tcl9.dev/pickle/pkg/host"
	"tcl9.dev/pickle/pkg/interp"
	"tcl9.dev/pickle/pkg/parse"
)

var (
	errMethodNotFound = &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams  = &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	scratch *interp.Interp
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	i := interp.New(nil)
	host.Install(i, host.Ports{})
	return &server{scratch: i, content: make(map[lsp.DocumentURI]string)}
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (interface{}, error)

func noop(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (interface{}, error) { return nil, nil }

func (s *server) handler() jsonrpc2.Handler {
	methods := map[string]method{
		"initialize":                      s.initialize,
		"textDocument/didOpen":            s.didOpen,
		"textDocument/didChange":          s.didChange,
		"textDocument/didSave":            s.didSave,
		"textDocument/completion":         s.completion,
		"textDocument/didClose":           noop,
		"initialized":                     noop,
		"workspace/didChangeWatchedFiles": noop,
	}
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

func (s *server) initialize(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (interface{}, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{OpenClose: true, Change: lsp.TDSKFull},
			},
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, raw json.RawMessage) (interface{}, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(raw, &params) != nil {
		return nil, errInvalidParams
	}
	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, raw json.RawMessage) (interface{}, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(raw, &params) != nil {
		return nil, errInvalidParams
	}
	if len(params.ContentChanges) == 0 {
		return nil, nil
	}
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

// didSave re-evaluates the saved buffer against the scratch interpreter, so
// that procs the document defines become visible to later completion
// requests (SPEC_FULL.md §4.13).
func (s *server) didSave(_ context.Context, _ jsonrpc2.JSONRPC2, raw json.RawMessage) (interface{}, error) {
	var params lsp.DidSaveTextDocumentParams
	if json.Unmarshal(raw, &params) != nil {
		return nil, errInvalidParams
	}
	content := s.content[params.TextDocument.URI]
	s.scratch.Eval(content)
	return nil, nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, raw json.RawMessage) (interface{}, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(raw, &params) != nil {
		return nil, errInvalidParams
	}
	names := s.scratch.CommandNames()
	items := make([]lsp.CompletionItem, len(names))
	for idx, name := range names {
		items[idx] = lsp.CompletionItem{Label: name, Kind: lsp.CIKFunction}
	}
	return items, nil
}

func (s *server) publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
}

func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	err := parse.Check(string(uri), content)
	if err == nil {
		return []lsp.Diagnostic{}
	}
	line := 0
	var posErr *diag.PositionError
	if errors.As(err, &posErr) {
		line = posErr.Context.Line - 1 // LSP lines are zero-based
	}
	return []lsp.Diagnostic{{
		Range:    lsp.Range{Start: lsp.Position{Line: line}, End: lsp.Position{Line: line}},
		Severity: lsp.Error,
		Source:   "parse",
		Message:  err.Error(),
	}}
}

// Run serves the language server over fds[0] (stdin) and fds[1] (stdout)
// until the connection closes.
func Run(fds [3]*os.File) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newServer()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		s.handler())
	<-conn.DisconnectNotify()
	return nil
}

type transport struct{ in, out *os.File }

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }
func (t transport) Close() error {
	if err := t.in.Close(); err != nil {
		t.out.Close()
		return err
	}
	return t.out.Close()
}
