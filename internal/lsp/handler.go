// Package lsp implements a language server for ssa source files: diagnostics,
// semantic tokens and hovers showing the IR of a statement.
package lsp

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ssac/internal/compiler"
	"ssac/internal/config"
)

var log = commonlog.GetLogger("ssac.lsp")

// document is the last known state of an open file. result is nil while the
// text does not compile.
type document struct {
	text   string
	result *compiler.Result
}

// Handler implements the LSP server handlers for ssa source files
type Handler struct {
	mu        sync.RWMutex
	documents map[string]*document
	options   compiler.Options
}

// NewHandler creates a handler compiling documents with options
func NewHandler(options compiler.Options) *Handler {
	return &Handler{
		documents: make(map[string]*document),
		options:   options,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	version := config.ToolVersion
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "ssac",
			Version: &version,
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen compiles the opened document and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange recompiles the document. Only full-document sync is
// advertised, so the last change carries the whole text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, c.Range == nil
		case *protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, c.Range == nil
		}
	}
	if !ok {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	return h.update(ctx, params.TextDocument.URI, text)
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.result == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.result.AST)),
	}, nil
}

// TextDocumentHover shows the IR built for the statement under the cursor
// followed by the optimized program
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.result == nil {
		return nil, nil
	}

	contents, ok := hoverContents(doc.result, doc.text, params.Position)
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: contents,
		},
	}, nil
}

func (h *Handler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

// update compiles text, stores the outcome and publishes diagnostics. An empty
// diagnostic list is published too, so fixed errors disappear.
func (h *Handler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	unit := compiler.Unit{Path: path, Source: text}
	result, err := compiler.Compile(context.Background(), unit, h.options)

	var diagnostics []protocol.Diagnostic
	if err != nil {
		diagnostics = ConvertDiagnostics(compiler.Diagnostics(err, text))
	} else {
		diagnostics = ConvertDiagnostics(compiler.Warnings(result))
	}

	h.mu.Lock()
	h.documents[uri] = &document{text: text, result: result}
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
