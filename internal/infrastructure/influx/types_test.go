package influx

import (
	"errors"
	"testing"
)

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Precision
		wantErr bool
	}{
		{name: "empty defaults to seconds", input: "", want: PrecisionSeconds},
		{name: "seconds symbol", input: "s", want: PrecisionSeconds},
		{name: "seconds word", input: "seconds", want: PrecisionSeconds},
		{name: "milliseconds symbol", input: "ms", want: PrecisionMilliseconds},
		{name: "legacy m spelling", input: "m", want: PrecisionMilliseconds},
		{name: "microseconds symbol", input: "u", want: PrecisionMicroseconds},
		{name: "microseconds word", input: "microseconds", want: PrecisionMicroseconds},
		{name: "case insensitive", input: "MS", want: PrecisionMilliseconds},
		{name: "unknown symbol", input: "fortnights", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrecision(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePrecision(%q) expected error", tt.input)
				}
				if !errors.Is(err, ErrUnknownPrecision) {
					t.Errorf("ParsePrecision(%q) error = %v, want ErrUnknownPrecision", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrecision(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePrecision(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrecision_String(t *testing.T) {
	if got := PrecisionSeconds.String(); got != "s" {
		t.Errorf("PrecisionSeconds.String() = %q, want \"s\"", got)
	}
	if got := PrecisionMilliseconds.String(); got != "ms" {
		t.Errorf("PrecisionMilliseconds.String() = %q, want \"ms\"", got)
	}
	if got := PrecisionMicroseconds.String(); got != "u" {
		t.Errorf("PrecisionMicroseconds.String() = %q, want \"u\"", got)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("metrics"); got != `"metrics"` {
		t.Errorf("quoteIdent = %s", got)
	}
	if got := quoteIdent(`me"trics`); got != `"me\"trics"` {
		t.Errorf("quoteIdent with embedded quote = %s", got)
	}
}

func TestQuoteString(t *testing.T) {
	if got := quoteString("pw123"); got != `'pw123'` {
		t.Errorf("quoteString = %s", got)
	}
	if got := quoteString(`p'w`); got != `'p\'w'` {
		t.Errorf("quoteString with embedded quote = %s", got)
	}
}
