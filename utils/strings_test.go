package utils

import (
	"fmt"
	"strings"
	"testing"
)

func ExampleCurioQuote() {
	b := &strings.Builder{}
	CurioQuote(b, "hello\tworld\n")
	fmt.Println(b.String())
	// Output: "hello\tworld\n"
}

func TestCurioQuote(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"ctrl\x01char", `"ctrl\u{1}char"`},
		{`åäö`, `"åäö"`},
	}
	for _, tc := range tests {
		b := &strings.Builder{}
		CurioQuote(b, tc.src)
		if b.String() != tc.expected {
			t.Errorf(`expected %s, got %s`, tc.expected, b.String())
		}
	}
}
