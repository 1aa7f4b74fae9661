package stringx

import (
	"testing"

	"golang.org/x/text/language"
	"gotest.tools/v3/assert"
)

func TestToTitleCase(t *testing.T) {
	t.Parallel()

	type input struct {
		value string
		opts  []TitleOption
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
			input:  input{value: ""},
			output: output{res: ""},
		},
		{
			name:   "should capitalize every word",
			input:  input{value: "hello world"},
			output: output{res: "Hello World"},
		},
		{
			name:   "should lower case the rest of each word",
			input:  input{value: "hELLO wORLD"},
			output: output{res: "Hello World"},
		},
		{
			name:   "should keep runs of spaces",
			input:  input{value: "  hello  world "},
			output: output{res: "  Hello  World "},
		},
		{
			name:   "should not split on tabs",
			input:  input{value: "hello\tWORLD"},
			output: output{res: "Hello\tworld"},
		},
		{
			name:   "should handle multi-byte first rune",
			input:  input{value: "élan vital"},
			output: output{res: "Élan Vital"},
		},
		{
			name:   "should apply language casing rules",
			input:  input{value: "istanbul", opts: []TitleOption{WithLanguage(language.Turkish)}},
			output: output{res: "İstanbul"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ToTitleCase(tt.input.value, tt.input.opts...)
			assert.Equal(t, res, tt.output.res)
		})
	}
}
