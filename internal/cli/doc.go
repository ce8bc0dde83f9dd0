// Package cli implements the sub-command registry and dispatch layer for the
// discern tool.
//
// Sub-commands plug in as Descriptors: each one names itself, registers its
// flags and positionals on an isolated Subgrammar, and exposes a handler. The
// Dispatcher composes a Registry of descriptors into one top-level grammar,
// parses the argument vector exactly once, and invokes the single matching
// handler.
//
// One process run makes one pass through the sequence
//
//	BuildGrammar -> Parse -> Dispatch
//
// and a Grammar is single-use: library callers wanting several independent
// invocations in one process build a fresh Grammar for each.
package cli
