// Package testutil provides fakes for testing brewdump components without
// a real Homebrew installation.
//
// Key components:
//   - MockRunner: brew.Runner driven by a function or a fixed output
//   - BrewScript: brew.Runner that answers from a command -> output table
//   - LookPath helpers: stand-ins for exec.LookPath
//
// Every fake records the command lines it received so tests can assert how
// often, and with what arguments, brew was invoked.
package testutil
