// Package app wires application dependencies for the CLI.
//
// It loads Config from flags, an optional config file and HASHGEN_*
// environment variables, then builds the hasher, services and store from it,
// exposing them via the Wire struct for commands to use.
package app
