// Package app wires one inspection session together: the session
// configuration, its logger, the lazily loaded dataset and the value
// formatter. Entry points such as the CLI only talk to App.
package app
