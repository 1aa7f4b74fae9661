package stringx

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	type input struct {
		value     string
		maxLength int
		opts      []TruncateOption
	}

	type output struct {
		res string
	}

	tests := []struct {
		name   string
		input  input
		output output
	}{
		{
			name:   "empty value is unchanged",
			input:  input{value: "", maxLength: 0},
			output: output{res: ""},
		},
		{
			name:   "shorter value is unchanged",
			input:  input{value: "Hello", maxLength: 8},
			output: output{res: "Hello"},
		},
		{
			name:   "value of exactly max length is unchanged",
			input:  input{value: "Hello World", maxLength: 11},
			output: output{res: "Hello World"},
		},
		{
			name:   "should truncate with default ellipsis",
			input:  input{value: "Hello World", maxLength: 8},
			output: output{res: "Hello..."},
		},
		{
			name:   "should truncate with custom ellipsis",
			input:  input{value: "Hello World", maxLength: 6, opts: []TruncateOption{WithEllipsis("…")}},
			output: output{res: "Hello…"},
		},
		{
			name:   "should truncate with empty ellipsis",
			input:  input{value: "Hello World", maxLength: 5, opts: []TruncateOption{WithEllipsis("")}},
			output: output{res: "Hello"},
		},
		{
			name:   "should count runes not bytes",
			input:  input{value: "héllo wörld", maxLength: 8},
			output: output{res: "héllo..."},
		},
		{
			name:   "max length shorter than ellipsis keeps only the ellipsis",
			input:  input{value: "abcdef", maxLength: 2},
			output: output{res: "..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Truncate(tt.input.value, tt.input.maxLength, tt.input.opts...)
			assert.Equal(t, res, tt.output.res)
		})
	}
}

func TestTruncateShortValuesUnchanged(t *testing.T) {
	t.Parallel()

	values := []string{"a", "ab", "Hello", "日本語", "a b c"}
	for _, v := range values {
		for n := len([]rune(v)); n < 12; n++ {
			assert.Equal(t, Truncate(v, n), v)
		}
	}
}
