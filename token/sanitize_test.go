package token

import (
	"bytes"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{name: "plain", in: []byte("{ IProject\n\t- a = b;\r\n}"), want: []byte("{ IProject\n\t- a = b;\r\n}")},
		{name: "controls", in: []byte("a\x00b\x01c\x1fd"), want: []byte("abcd")},
		{name: "unicode kept", in: []byte("é€😀"), want: []byte("é€😀")},
		{name: "noncharacter", in: []byte("a\uFFFEb"), want: []byte("ab")},
		{name: "latin1 kept", in: []byte{'a', 0xe9, 'b'}, want: []byte{'a', 0xe9, 'b'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestSanitizeNoCopy(t *testing.T) {
	in := []byte("- x = 1;")
	if got := Sanitize(in); &got[0] != &in[0] {
		t.Errorf("expected input slice to be returned unchanged")
	}
}
