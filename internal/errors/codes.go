package errors

// Error codes for the ssac compiler
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: IR construction errors
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors
// W0001-W0099: Warnings

const (
	// E0001: Variable resolution errors
	ErrorUndefinedVariable = "E0001"

	// E0002: Broken SSA invariants, only reachable through a compiler bug
	ErrorInvariantViolation = "E0002"

	// E0100: Source does not match the grammar
	ErrorSyntax = "E0100"

	// E0101: Integer literal outside the 64-bit signed range
	ErrorInvalidLiteral = "E0101"

	// E0102: Type annotation other than int
	ErrorUnsupportedType = "E0102"

	// E0900: File could not be read or watched
	ErrorIO = "E0900"

	// W0001: Division by a constant zero survives optimization
	WarningDivisionByZero = "W0001"

	// W0002: A value is reassigned before anything reads it
	WarningOverwrittenValue = "W0002"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndefinedVariable:
		return "Variable is used before any declaration or assignment"
	case ErrorInvariantViolation:
		return "Generated IR breaks single assignment or definition order"
	case ErrorSyntax:
		return "Source text does not match the language grammar"
	case ErrorInvalidLiteral:
		return "Integer literal does not fit in 64 bits"
	case ErrorUnsupportedType:
		return "Only the int type is supported"
	case ErrorIO:
		return "Source file could not be accessed"
	case WarningDivisionByZero:
		return "Division by zero is left for run time"
	case WarningOverwrittenValue:
		return "Assigned value is overwritten before it is read"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "IR Construction"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
