// Package brew wraps the Homebrew command line.
//
// Everything brewdump learns about the machine comes from running brew and
// reading its standard output. The Runner interface is the only seam between
// brewdump and the real process, so tests substitute a stub and never touch
// the system. Commands builds the command lines, quoting package names for
// the shell, and Installed reports whether brew can be found at all.
package brew
