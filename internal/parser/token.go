// Package parser implements the shunting-yard scanner and two-stack
// evaluator for the pattern syntax: it consumes one pattern's code
// units and emits NFA fragments directly, with no intermediate AST.
package parser

import "github.com/coregx/lexdfa/internal/codeunit"

// TokenKind identifies a scanned token.
type TokenKind int

const (
	// TokLiteral carries a literal code unit operand (plain char or \x escape).
	TokLiteral TokenKind = iota
	TokLParen
	TokRParen
	// TokConcat is the explicit '.' operator or a synthesized implicit
	// concatenation inserted between two adjacent operands.
	TokConcat
	TokUnion
	TokStar
	TokQuestion
	TokPlus
)

// Token is one scanned unit: its kind, and for TokLiteral the code unit
// value.
type Token struct {
	Kind  TokenKind
	Value codeunit.CodeUnit
}

// tokenize scans a pattern's code units into a token stream, synthesizing
// implicit concatenation via the "cat" flag rule: after an operand-
// closing token (literal, escape, ')', '*', '?', '+') an operand-opening
// token ('(', literal, escape) gets an implicit TokConcat inserted first.
func tokenize(units []codeunit.CodeUnit) ([]Token, error) {
	var tokens []Token
	cat := false

	emitConcatIfNeeded := func() {
		if cat {
			tokens = append(tokens, Token{Kind: TokConcat})
		}
	}

	for i := 0; i < len(units); i++ {
		c := units[i]
		switch {
		case c == codeunit.CodeUnit('\\'):
			i++
			if i >= len(units) || units[i] == codeunit.EOF {
				return nil, &SyntaxError{Msg: "unterminated escape at end of pattern"}
			}
			emitConcatIfNeeded()
			tokens = append(tokens, Token{Kind: TokLiteral, Value: units[i]})
			cat = true
		case c == codeunit.CodeUnit('('):
			emitConcatIfNeeded()
			tokens = append(tokens, Token{Kind: TokLParen})
			cat = false
		case c == codeunit.CodeUnit(')'):
			tokens = append(tokens, Token{Kind: TokRParen})
			cat = true
		case c == codeunit.CodeUnit('.'):
			tokens = append(tokens, Token{Kind: TokConcat})
			cat = false
		case c == codeunit.CodeUnit('|'):
			tokens = append(tokens, Token{Kind: TokUnion})
			cat = false
		case c == codeunit.CodeUnit('*'):
			tokens = append(tokens, Token{Kind: TokStar})
			cat = true
		case c == codeunit.CodeUnit('?'):
			tokens = append(tokens, Token{Kind: TokQuestion})
			cat = true
		case c == codeunit.CodeUnit('+'):
			tokens = append(tokens, Token{Kind: TokPlus})
			cat = true
		default:
			emitConcatIfNeeded()
			tokens = append(tokens, Token{Kind: TokLiteral, Value: c})
			cat = true
		}
	}

	return tokens, nil
}
