package parser

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/coregx/lexdfa/internal/codeunit"
	"github.com/coregx/lexdfa/internal/nfa"
)

// precedence ranks binary operators for the shunting-yard loop: alternation
// binds loosest, concatenation tighter. Postfix unary operators (*, ?, +)
// never reach the operator stack: they are
// right-associated and applied immediately to the fragment-stack top, so
// they need no precedence of their own.
func precedence(k TokenKind) int {
	switch k {
	case TokUnion:
		return 0
	case TokConcat:
		return 1
	default:
		return -1
	}
}

// Parse scans pattern and builds its NFA fragment against b using the
// shunting-yard two-stack algorithm: an operator stack (binary operators
// plus an LParen marker) and a fragment stack, both backed by
// gods/stacks/linkedliststack.
func Parse(pattern []codeunit.CodeUnit, b *nfa.Builder) (nfa.Fragment, error) {
	if len(pattern) == 0 {
		return nfa.Fragment{}, &SyntaxError{Msg: "empty pattern"}
	}
	for _, c := range pattern {
		if c == codeunit.EOF {
			return nfa.Fragment{}, &AlphabetError{Msg: "code unit 0 is reserved as the pattern terminator"}
		}
	}

	tokens, err := tokenize(pattern)
	if err != nil {
		return nfa.Fragment{}, err
	}
	if len(tokens) == 0 {
		return nfa.Fragment{}, &SyntaxError{Msg: "empty pattern"}
	}

	ops := linkedliststack.New()   // holds Token (TokConcat/TokUnion) or a TokLParen marker token
	frags := linkedliststack.New() // holds nfa.Fragment

	popFrag := func() (nfa.Fragment, bool) {
		v, ok := frags.Pop()
		if !ok {
			return nfa.Fragment{}, false
		}
		return v.(nfa.Fragment), true
	}

	applyBinary := func(kind TokenKind) error {
		r, ok := popFrag()
		if !ok {
			return &SyntaxError{Msg: "operator missing right operand"}
		}
		l, ok := popFrag()
		if !ok {
			return &SyntaxError{Msg: "operator missing left operand"}
		}
		switch kind {
		case TokConcat:
			frags.Push(b.Concat(l, r))
		case TokUnion:
			frags.Push(b.Alternate(l, r))
		}
		return nil
	}

	applyPostfix := func(kind TokenKind) error {
		l, ok := popFrag()
		if !ok {
			return &SyntaxError{Msg: "postfix operator with no operand"}
		}
		switch kind {
		case TokStar:
			frags.Push(b.Star(l))
		case TokQuestion:
			frags.Push(b.Optional(l))
		case TokPlus:
			frags.Push(b.Plus(l))
		}
		return nil
	}

	isLParen := func(v interface{}) bool {
		t, ok := v.(Token)
		return ok && t.Kind == TokLParen
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokLiteral:
			frags.Push(b.Literal(tok.Value))

		case TokLParen:
			ops.Push(tok)

		case TokRParen:
			for {
				top, ok := ops.Peek()
				if !ok {
					return nfa.Fragment{}, &SyntaxError{Msg: "unbalanced parentheses: unmatched ')'"}
				}
				if isLParen(top) {
					ops.Pop()
					break
				}
				ops.Pop()
				if err := applyBinary(top.(Token).Kind); err != nil {
					return nfa.Fragment{}, err
				}
			}

		case TokStar, TokQuestion, TokPlus:
			if err := applyPostfix(tok.Kind); err != nil {
				return nfa.Fragment{}, err
			}

		case TokConcat, TokUnion:
			for {
				top, ok := ops.Peek()
				if !ok || isLParen(top) || precedence(top.(Token).Kind) < precedence(tok.Kind) {
					break
				}
				ops.Pop()
				if err := applyBinary(top.(Token).Kind); err != nil {
					return nfa.Fragment{}, err
				}
			}
			ops.Push(tok)
		}
	}

	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if isLParen(top) {
			return nfa.Fragment{}, &SyntaxError{Msg: "unbalanced parentheses: unmatched '('"}
		}
		if err := applyBinary(top.(Token).Kind); err != nil {
			return nfa.Fragment{}, err
		}
	}

	result, ok := popFrag()
	if !ok {
		return nfa.Fragment{}, &SyntaxError{Msg: "empty pattern"}
	}
	if frags.Size() != 0 {
		return nfa.Fragment{}, &SyntaxError{Msg: "dangling operand: missing operator between fragments"}
	}
	return result, nil
}
