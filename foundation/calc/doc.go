// File: doc.go
// Title: Calc Package Documentation
// Description: Package calc is the entry point of the rechenwerk front-end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine package

/*
Package calc runs the rechenwerk front-end: it tokenizes and parses calc
programs and reports errors as structured rwerror values.

	engine, err := calc.New(calc.Options{Logger: logger})
	if err != nil {
		return err
	}

	result, err := engine.Parse("a = 3; return a * 2;")
	if se, ok := calc.AsSyntaxError(err); ok {
		se.Render(os.Stderr, true)
		return err
	}
	fmt.Println(result.Program)

Every call is a separate session with its own id. The id is set as the
logger's correlation id, so all records of one parse can be grouped.
Evaluation of the resulting program is left to other components.
*/
package calc
