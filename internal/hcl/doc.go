// Package hcl provides the HCL implementation of config.Loader. It parses
// workbook files, evaluates their expressions and translates them into the
// format-agnostic config.Workbook.
package hcl
