// Package session runs the interactive calculator: a greeting, then a numbered
// menu of eight operations that repeats until the user types "end".
//
// Each operation first fixes the operand shapes (re-asking until they suit the
// operation), then collects every operand from a source chosen by the user,
// echoes it, and prints the result. Input problems are always resolved by
// asking again, so the engine only ever sees well-formed operands. A closed
// input stream ends the session as if "end" had been typed.
package session
