// Package expr evaluates infix arithmetic over float64: numbers, the binary
// operators + - * / % and right-associative ^, unary signs, parentheses, the
// constants pi and e, and a table of named functions implemented as cty
// functions (see Functions). The grammar is declared as participle structs
// in grammar.go and evaluated by walking the parsed tree.
//
// Precedence from loosest to tightest: + -, then * / %, then unary signs,
// then ^. So -2^2 is -4 and 2^-1 is 0.5.
package expr
