// Package dataset binds the fixed set of named collections to a lazy registry.
//
// Directory-backed collections (objs, npcs, items, models, rawEnums, structs)
// read one JSON file per id. The derived collections build on them: enums
// materializes rawEnums, interfaces reads one sub-collection per directory
// under the interface root, and widgets flattens interfaces. Every collection
// is read at most once per Dataset.
package dataset
