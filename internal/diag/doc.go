// Package diag defines the diagnostic model shared by all pipeline phases.
//
//   - Severity, Code, Diagnostic: deterministic, serialisable findings from
//     the lexer, classifier, resolver, and file driver.
//   - Reporter: decouples emission from storage; producers report without
//     knowing where diagnostics end up.
//   - Bag: per-file aggregation with sorting and deduplication, so batch
//     output stays stable regardless of worker scheduling.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
