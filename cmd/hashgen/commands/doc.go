// Package commands defines the hashgen CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hashgen [file]          Hash a roster from file, or from stdin when no file is given
//   - hashgen check <email>   Report whether an email's hash is listed in a hash file
//   - hashgen version         Print build information
//
// # Implementation
//
// The root command loads configuration through viper (flags, an optional
// config file, HASHGEN_* environment variables) and builds the dependency
// graph in PersistentPreRunE, so every handler shares one app.Wire.
//
// Reports go to the command's stdout; warnings and errors go to the logger
// and stderr, so the printed declaration can be piped as is.
package commands
