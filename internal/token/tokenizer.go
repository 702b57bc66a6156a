package token

import "fmt"

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// LexicalError is returned when the input contains a rune that cannot start
// any token.
type LexicalError struct {
	Pos  int
	Char rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}
