// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"ssac/internal/compiler"
	"ssac/internal/config"
	"ssac/internal/lsp"
)

const lsName = "ssac"

var handler protocol.Handler

func main() {
	cfg, err := config.Find(".")
	if err != nil {
		// stdout belongs to the protocol
		os.Stderr.WriteString("ssac-lsp: " + err.Error() + "\n")
		os.Exit(1)
	}

	commonlog.Configure(cfg.Verbosity, nil)
	log := commonlog.GetLogger("ssac.lsp.server")

	ssacHandler := lsp.NewHandler(compiler.Options{Pipeline: cfg.Optimize})

	handler = protocol.Handler{
		Initialize:                     ssacHandler.Initialize,
		Initialized:                    ssacHandler.Initialized,
		Shutdown:                       ssacHandler.Shutdown,
		SetTrace:                       ssacHandler.SetTrace,
		TextDocumentDidOpen:            ssacHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           ssacHandler.TextDocumentDidClose,
		TextDocumentDidChange:          ssacHandler.TextDocumentDidChange,
		TextDocumentHover:              ssacHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: ssacHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, config.ToolVersion)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
