// Package lsp implements a language server for ABC tune files, offering
// whole-document formatting backed by the canonicalizer.
package lsp

import (
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/abcfmt/format"
)

const lsName = "abcfmt"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger

	mu   sync.Mutex
	docs map[string]string // URI -> content
}

func NewServer(version string) *Server {
	s := &Server{
		version: version,
		log:     commonlog.GetLogger(lsName),
		docs:    make(map[string]string),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentFormatting: s.textDocumentFormatting,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.setDoc(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.setDoc(params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	s.mu.Lock()
	text, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	formatted, warnings := format.CanonifyTunebook([]byte(text))
	for _, w := range warnings {
		s.log.Warningf("%s line %d: music code does not parse at offset %d",
			params.TextDocument.URI, w.Line, w.Offset)
	}
	if string(formatted) == text {
		return nil, nil
	}

	return []protocol.TextEdit{{
		Range:   fullRange(text),
		NewText: string(formatted),
	}}, nil
}

func (s *Server) setDoc(uri, text string) {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()
}

// fullRange covers the whole document. Character offsets count UTF-16
// code units, per the protocol.
func fullRange(text string) protocol.Range {
	lines := strings.Count(text, "\n")
	last := text
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		last = text[i+1:]
	}
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      protocol.UInteger(lines),
			Character: protocol.UInteger(len(utf16.Encode([]rune(last)))),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
