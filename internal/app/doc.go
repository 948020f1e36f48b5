// Package app wires application dependencies for the CLI.
//
// Load assembles a Config from defaults, the config file in the home
// directory, a .env file and the process environment. NewWire builds the
// logger, preference store, prediction client and services from it, exposing
// them via the Wire struct for commands to use.
package app
