// Package config loads the optional HCL session file that tells the inspector
// where each definition directory lives and how to log.
//
//	root = "${env.HOME}/cache-dump"
//
//	collection "objs" {
//	  dir = "object_defs"
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions can read the process environment through the env variable.
// A relative root is resolved against the directory holding the file.
package config
