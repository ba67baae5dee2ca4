package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ssac/internal/errors"
)

const diagnosticSource = "ssac"

// ConvertDiagnostics transforms compiler errors and warnings into LSP
// diagnostics. Errors without a source position are reported on the first line.
func ConvertDiagnostics(diagnostics []errors.CompilerError) []protocol.Diagnostic {
	converted := make([]protocol.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		severity := protocol.DiagnosticSeverityError
		if d.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}

		var start protocol.Position
		if d.Position.Line > 0 {
			start = protocol.Position{
				Line:      uint32(d.Position.Line - 1),
				Character: uint32(max(0, d.Position.Column-1)),
			}
		}
		end := start
		end.Character += uint32(max(1, d.Length))

		converted = append(converted, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: ptrSeverity(severity),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  message(d),
		})
	}

	return converted
}

// message appends the first suggestion, which editors otherwise never show
func message(d errors.CompilerError) string {
	if len(d.Suggestions) == 0 {
		return d.Message
	}
	return d.Message + " (" + d.Suggestions[0].Message + ")"
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
