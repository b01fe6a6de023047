// Package token defines lexical token kinds and trivia for Ada sources.
// Invariants:
//   - Token.Text is the exact source spelling (original casing preserved).
//   - Token.Span matches Text exactly (Start..End).
//   - Reserved words are recognized case-insensitively; everything else that
//     starts with a letter is an Ident.
//   - Comments ("-- ...") and whitespace are leading Trivia and never appear
//     in the main token stream.
//   - Built-in type names (Integer, Float, Boolean, ...) are identifiers.
//     They are recognized by the casing layer, not the lexer.
package token
