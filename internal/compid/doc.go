// Package compid packs and unpacks composite identifiers: a 32-bit value
// whose upper 16 bits name a group (an interface) and whose lower 16 bits
// name a child (a widget inside it).
package compid
