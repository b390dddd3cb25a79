// Package input collects well-formed matrices and scalars for the engine.
//
// Three sources produce a *matrix.Dense of a shape fixed in advance:
//
//   - Console reads one row per line and re-reads a row until it holds exactly
//     the expected count of real numbers.
//   - Random fills the matrix from an explicit, seeded generator.
//   - File reads a plain-text file (one row per line, whitespace separated)
//     and rejects it when the shape or any token is wrong.
//
// Prompter owns the line reader and the message writer; it re-asks on bad
// input and only fails when the reader is exhausted (ErrInputClosed).
// LoadFile is the non-interactive variant used by one-shot commands: it infers
// the shape from the file.
package input
