package utils

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// CurioQuote writes str to w as a double quoted Curio string literal with
// control characters and quoting metacharacters escaped.
func CurioQuote(w io.Writer, str string) {
	WriteByte(w, '"')
	for _, c := range str {
		switch c {
		case '\t':
			io.WriteString(w, `\t`)
		case '\n':
			io.WriteString(w, `\n`)
		case '\r':
			io.WriteString(w, `\r`)
		case '"':
			io.WriteString(w, `\"`)
		case '\\':
			io.WriteString(w, `\\`)
		default:
			if c < 0x20 {
				fmt.Fprintf(w, `\u{%X}`, c)
			} else {
				WriteRune(w, c)
			}
		}
	}
	WriteByte(w, '"')
}

func WriteByte(b io.Writer, v byte) {
	b.Write([]byte{v})
}

func WriteRune(b io.Writer, v rune) {
	if v < utf8.RuneSelf {
		WriteByte(b, byte(v))
	} else {
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, v)
		b.Write(buf[:n])
	}
}
