// Package config loads the fieldaccess-gen configuration file.
//
// The file is YAML (.yaml, .yml) or TOML (.toml), chosen by extension:
//
//	version: "1"
//	packages: ["./examples/records"]
//	types: ["Triple"]
//	select: 'Exported && Name startsWith "Rec"'
//	output: fieldaccess_gen.go
//	runtime: fieldaccess
//
// Loading runs LoadFile -> Parse -> applyDefaults -> Validate.
package config
