// Package toml provides the TOML implementation of config.Loader. A TOML
// workbook carries the same attributes as its HCL counterpart, with sheets
// declared as a [[sheet]] array of tables:
//
//	folder = "data"
//	passes = 4
//
//	[[sheet]]
//	name      = "budget"
//	delimiter = ";"
package toml
