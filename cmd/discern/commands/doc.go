// Package commands defines the discern CLI and assembles its sub-command
// registry.
//
// Commands
//
//   - extract   Extract labelled pair feature vectors from a corpus
//   - decode    Predict attachments with a trained model
//   - vocab     Print a vocabulary file in index order
//   - inspect   Dump one parsed document
//
// # Implementation
//
// Each command is a cli.Descriptor. Execute builds the dispatcher with the
// global --config flag, runs the build/parse/dispatch sequence once, and
// loads configuration after a successful parse so handlers see flag values
// layered over config over defaults.
package commands
