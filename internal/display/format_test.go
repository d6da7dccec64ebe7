package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestFormat_Short(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "short title unchanged", input: "Intro - The xx", want: "Intro - The xx"},
		{name: "exactly twenty", input: "12345678901234567890", want: "12345678901234567890"},
		{name: "twenty one", input: "123456789012345678901", want: "12345678901234567890…"},
		{name: "long title", input: "Midnight City - M83 (Live at Coachella)", want: "Midnight City - M83 …"},
		{name: "multibyte counted as characters", input: "日本語のとても長いタイトルです。ほんとうに", want: "日本語のとても長いタイトルです。ほんとう…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input).Short
			if got != tt.want {
				t.Errorf("Format(%q).Short = %q, want %q", tt.input, got, tt.want)
			}
			if utf8.RuneCountInString(tt.input) > ShortLength {
				if n := utf8.RuneCountInString(got); n != ShortLength+1 {
					t.Errorf("Format(%q).Short has %d characters, want %d", tt.input, n, ShortLength+1)
				}
				if !strings.HasSuffix(got, Ellipsis) {
					t.Errorf("Format(%q).Short = %q, want ellipsis suffix", tt.input, got)
				}
			}
		})
	}
}

func TestFormat_Full(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "shorter than width unchanged",
			input: "Midnight City - M83",
			want:  "Midnight City - M83",
		},
		{
			name:  "breaks after the word crossing column forty",
			input: "Everything In Its Right Place - Radiohead Kid A Mnesia",
			want:  "Everything In Its Right Place - Radiohead\nKid A Mnesia",
		},
		{
			name:  "breaks at whitespace exactly at column forty",
			input: "0123456789012345678901234567890123456789 next",
			want:  "0123456789012345678901234567890123456789\nnext",
		},
		{
			name:  "collapses the whitespace run it splits on",
			input: "0123456789012345678901234567890123456789   next",
			want:  "0123456789012345678901234567890123456789\nnext",
		},
		{
			name:  "no whitespace after column forty",
			input: "Supercalifragilisticexpialidocious-Supercalifragilistic",
			want:  "Supercalifragilisticexpialidocious-Supercalifragilistic",
		},
		{
			name:  "trailing whitespace does not produce a trailing break",
			input: "0123456789012345678901234567890123456789  ",
			want:  "0123456789012345678901234567890123456789  ",
		},
		{
			name: "multiple lines",
			input: "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd eeeeeeeeee " +
				"ffffffffff gggggggggg hhhhhhhhhh iiiiiiiiii jjjjjjjjjj",
			want: "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd\n" +
				"eeeeeeeeee ffffffffff gggggggggg hhhhhhhhhh\n" +
				"iiiiiiiiii jjjjjjjjjj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input).Full
			if got != tt.want {
				t.Errorf("Format(%q).Full = %q, want %q", tt.input, got, tt.want)
			}
			if strings.HasSuffix(got, "\n") {
				t.Errorf("Format(%q).Full = %q has a trailing break", tt.input, got)
			}
		})
	}
}

// TestFormat_FullLosesNoCharacters checks that only whitespace is ever replaced
func TestFormat_FullLosesNoCharacters(t *testing.T) {
	inputs := []string{
		"",
		"short",
		"Everything In Its Right Place - Radiohead Kid A Mnesia",
		"The Less I Know The Better - Tame Impala - Currents (Deluxe Edition) 2015 Remaster",
		"Ünïcödé  títlé wïth  döüblé spàcés thät göés ön änd ön änd ön änd ön",
		strings.Repeat("word ", 40),
	}

	for _, input := range inputs {
		full := Format(input).Full
		if strings.Join(strings.Fields(full), " ") != strings.Join(strings.Fields(input), " ") {
			t.Errorf("Format(%q).Full = %q changed non-whitespace content", input, full)
		}
		if strings.Count(full, "\n") > strings.Count(input, "\n") {
			for _, line := range strings.Split(full, "\n") {
				if line == "" {
					t.Errorf("Format(%q).Full = %q contains an empty line", input, full)
				}
			}
		}
	}
}

func TestFormat_SameSource(t *testing.T) {
	input := "The Less I Know The Better - Tame Impala - Currents (Deluxe Edition)"
	d := Format(input)
	if d.Source != input {
		t.Errorf("Source = %q, want %q", d.Source, input)
	}
	if Truncate(d.Source, ShortLength) != d.Short || Wrap(d.Source, WrapWidth) != d.Full {
		t.Error("Short and Full are not derived from Source")
	}
}

func TestFormat_FiftyFiveCharacterTitle(t *testing.T) {
	input := "Bohemian Rhapsody - Remastered 2011 - Queen Greatest Hi"
	if n := utf8.RuneCountInString(input); n != 55 {
		t.Fatalf("fixture has %d characters, want 55", n)
	}

	d := Format(input)
	if n := utf8.RuneCountInString(d.Short); n != 21 {
		t.Errorf("Short has %d characters, want 21", n)
	}
	if !strings.HasSuffix(d.Short, Ellipsis) {
		t.Errorf("Short = %q, want ellipsis suffix", d.Short)
	}
	if !strings.Contains(d.Full, "\n") {
		t.Errorf("Full = %q, want at least one line break", d.Full)
	}
}

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very long…",
		},
		{
			name:     "handle wide characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate wide characters",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語と… ",
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("PadToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			if tt.width > 0 {
				if w := runewidth.StringWidth(result); w != tt.width {
					t.Errorf("PadToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, w, tt.width)
				}
			}
		})
	}
}
