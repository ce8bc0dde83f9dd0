// Package app wires application dependencies for the CLI.
//
// It builds the corpus reader, feature extractor and model store from
// Config, exposing them via the Wire struct for sub-command handlers to use.
package app
