package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parsePositiveIntegerAmount(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int64
		wantOK bool
	}{
		{name: "plain integer", in: "500", want: 500, wantOK: true},
		{name: "leading zeros", in: "007", want: 7, wantOK: true},
		{name: "large value", in: "1000000000", want: 1000000000, wantOK: true},
		{name: "zero", in: "0"},
		{name: "all zeros", in: "000"},
		{name: "decimal point", in: "100.50"},
		{name: "negative sign", in: "-100"},
		{name: "positive sign", in: "+100"},
		{name: "letters", in: "12a"},
		{name: "empty", in: ""},
		{name: "whitespace", in: " 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parsePositiveIntegerAmount(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_isValidAccountID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "alphanumeric", in: "N90394", want: true},
		{name: "lower case", in: "acc1", want: true},
		{name: "dash dot at", in: "a-b.c@d", want: true},
		{name: "only specials", in: "-.@", want: true},
		{name: "space", in: "a b", want: false},
		{name: "underscore", in: "a_b", want: false},
		{name: "hash", in: "acc#1", want: false},
		{name: "non ascii", in: "compté", want: false},
		{name: "empty", in: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidAccountID(tt.in))
		})
	}
}
