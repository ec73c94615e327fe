// Package file provides the TOML-file implementation of driven.ConfigStore.
//
// Keys are exposed in dot notation: the file
//
//	[refs]
//	target = "../automations.schema.json"
//
//	[titles]
//	"tables/tables.schema.json" = "Tables"
//
// yields the keys "refs.target" and "titles.tables/tables.schema.json".
package file
