package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is the root of the grammar: terms joined by + and -.
type Expression struct {
	Left  *Term     `parser:"@@"`
	Right []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op   string `parser:"@('+' | '-')"`
	Term *Term  `parser:"@@"`
}

// Term is a chain of unary operands joined by *, / and %.
type Term struct {
	Left  *Unary     `parser:"@@"`
	Right []*OpUnary `parser:"@@*"`
}

type OpUnary struct {
	Op    string `parser:"@('*' | '/' | '%')"`
	Unary *Unary `parser:"@@"`
}

// Unary is a signed operand. Signs bind looser than ^.
type Unary struct {
	Op    string `parser:"@('-' | '+')"`
	Unary *Unary `parser:"@@"`
	Power *Power `parser:"| @@"`
}

// Power is right-associative because its exponent is itself a Unary.
type Power struct {
	Base     *Primary `parser:"@@"`
	Exponent *Unary   `parser:"( '^' @@ )?"`
}

type Primary struct {
	Number   *float64    `parser:"@Number"`
	Call     *Call       `parser:"| @@"`
	Constant *string     `parser:"| @Ident"`
	Sub      *Expression `parser:"| '(' @@ ')'"`
}

type Call struct {
	Name string        `parser:"@Ident '('"`
	Args []*Expression `parser:"( @@ ( ',' @@ )* )? ')'"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*/%^(),]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var exprParser = participle.MustBuild[Expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
