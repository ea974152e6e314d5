// Package cli builds the defpeek command tree, validates flags and handles
// process-level concerns like exit codes. Every subcommand creates one App
// session and prints its result as indented JSON.
package cli
