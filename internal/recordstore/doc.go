// Package recordstore reads the flat-file dataset into generic records.
//
// A definition directory holds one JSON file per entity, named by its numeric
// id ("1234.json"). ReadJSONDir loads such a directory into a Collection: a
// sparse, id-indexed slice with holes where an id has no file. JSON numbers
// are normalized to int64 when integral and float64 otherwise so records
// compare structurally and feed the integer formatters directly.
//
// The package also carries the small delimited-table reader and the output
// sink (WriteFile / WriteJSON) used by the CLI.
package recordstore
