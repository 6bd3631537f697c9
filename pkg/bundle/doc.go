// Package bundle turns what Homebrew reports as installed into Brewfile
// entries.
package bundle
