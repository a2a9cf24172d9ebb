// Package error provides the structured error type used by rechenwerk.
//
// An *Error carries a Code, a Severity, an operation name and free-form
// details. Errors wrap their cause, so errors.Is and errors.As keep working
// through the chain:
//
//	err := rwerror.Wrap(synErr, "parse failed").
//		WithCode(rwerror.CodeSyntaxExpectedTerminator).
//		WithDetail("offset", 1)
//
//	var se *parser.SyntaxError
//	if errors.As(err, &se) {
//		// se.Diagnostic() points at the offending byte
//	}
//
// Import it under an alias, since the package name shadows the builtin:
//
//	import rwerror "github.com/msto63/rechenwerk/foundation/core/error"
package error
