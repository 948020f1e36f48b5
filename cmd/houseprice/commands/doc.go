// Package commands defines the houseprice CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - predict   Predict a price from the eight features given as flags
//   - form      Enter the features interactively, one prompt per field
//   - theme     Show, toggle or set the light/dark preference
//   - fields    List the form fields and their flags
//
// # Implementation
//
// The root command loads configuration (defaults, <home>/config.yaml, .env,
// environment, then flags) and builds the dependency graph before any
// subcommand runs, so handlers share one logger, preference store and
// prediction client.
package commands
