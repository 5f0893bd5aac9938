// Package config defines the format-agnostic workbook model: which sheet
// files to read, how to split them and how to resolve them. Concrete
// loaders, such as the HCL one, live in separate packages and implement
// Loader.
package config
