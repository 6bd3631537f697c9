// Package output renders brewdump results for humans (styled text) and for
// scripts (JSON or YAML).
package output
