// Package commands defines the uconv CLI.
//
// Commands
//
//   - (none)   Open the interactive converter screen
//   - convert  Convert one value and print the result
//   - units    List the supported units
//   - prompt   Ask for a value and units with a form, then print the result
//   - version  Print the version
//
// # Implementation
//
// The root command loads configuration and builds the logger before any
// subcommand runs. Output meant for scripts goes to stdout; logs go to
// stderr, or to the configured log file while the screen owns the terminal.
package commands
