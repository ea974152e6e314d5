// Package format renders raw definition values for people.
//
// Exact formatting is driven by a declared primitive Type (the keyType and
// valType tags of enums): booleans, colours, component ids, coordinate grids
// and references to items, locs and npcs each have one rendering. Reference
// kinds resolve names through a NameSource and fall back to the raw id when
// the referenced record does not exist.
//
// FormatScriptArg is separate and heuristic: it is used where no type is
// declared (widget listener arguments) and guesses whether an integer is a
// script event sentinel or a packed component pair.
package format
