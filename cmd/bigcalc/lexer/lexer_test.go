package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, input string) []Token {
	l := New(strings.NewReader(input))

	var got []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		got = append(got, tok)
		if tok.Kind == End {
			return got
		}
	}
}

func TestNext(t *testing.T) {
	got := tokens(t, "12 + 34 * (5 - 6)\n")
	want := []Token{
		{Kind: Num, Value: "12"},
		{Kind: Add},
		{Kind: Num, Value: "34"},
		{Kind: Mul},
		{Kind: LParen},
		{Kind: Num, Value: "5"},
		{Kind: Sub},
		{Kind: Num, Value: "6"},
		{Kind: RParen},
		{Kind: EOL},
		{Kind: End},
	}
	require.Equal(t, want, got)
}

func TestNextDivisionAndEmptyInput(t *testing.T) {
	got := tokens(t, "")
	require.Equal(t, []Token{{Kind: End}}, got)

	got = tokens(t, "10/2\n")
	want := []Token{
		{Kind: Num, Value: "10"},
		{Kind: Div},
		{Kind: Num, Value: "2"},
		{Kind: EOL},
		{Kind: End},
	}
	require.Equal(t, want, got)
}

func TestNextUnexpectedCharacter(t *testing.T) {
	l := New(strings.NewReader("@"))
	_, err := l.Next()
	require.Error(t, err)
}
