// Tests for the normalize package: the full recognition pipeline.
package normalize

import (
	"fmt"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Identity on non-numeric text --

		{"empty", "", ""},
		{"plain text unchanged", "xin chào các bạn!", "xin chào các bạn!"},
		{"punctuation unchanged", "chào... bạn?!", "chào... bạn?!"},

		// -- Whitespace collapsing --

		{"collapse spaces", "xin   chào \t bạn", "xin chào bạn"},
		{"trim ends", "  xin chào\n", "xin chào"},

		// -- Alphanumeric separation --

		{"plate number", "22T583XYZ", "hai mươi hai T năm trăm tám mươi ba XYZ"},
		{"underscore and hyphen become spaces", "mã_số-x", "mã số x"},

		// -- Generic integers --

		{"single digit", "5", "năm"},
		{"small number", "123", "một trăm hai mươi ba"},
		{"grouped number", "1000000", "một triệu"},
		{"number in sentence", "có 21 người", "có hai mươi mốt người"},
		{"time-like pair", "10:30", "mười:ba mươi"},

		// -- Decimals --

		{"dot decimal", "3.14", "ba phẩy một bốn"},
		{"comma decimal", "3,14", "ba phẩy một bốn"},
		{"decimal keeps leading zero", "0,05", "không phẩy không năm"},

		// -- Dates --

		{"slash date", "15/03/2023",
			"ngày mười lăm tháng ba năm hai nghìn không trăm hai mươi ba"},
		{"dash date day first", "15-03-2023",
			"ngày mười lăm tháng ba năm hai nghìn không trăm hai mươi ba"},
		{"year-first date", "2023-01-05",
			"ngày năm tháng một năm hai nghìn không trăm hai mươi ba"},
		{"april is irregular", "01/04/2024",
			"ngày một tháng tư năm hai nghìn không trăm hai mươi tư"},

		// -- Datetimes --

		{"full datetime", "2023-01-05 10:30:00",
			"ngày năm tháng một năm hai nghìn không trăm hai mươi ba giờ mười phút ba mươi giây không"},
		{"datetime in sentence", "Hẹn gặp lúc 2023-01-05 10:30:00 nhé",
			"Hẹn gặp lúc ngày năm tháng một năm hai nghìn không trăm hai mươi ba giờ mười phút ba mươi giây không nhé"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizePassOrdering verifies that a datetime span is consumed whole
// before the date and integer passes can shatter its substrings.
func TestNormalizePassOrdering(t *testing.T) {
	t.Parallel()

	got := Normalize("Ngày 15/03/2023 lúc 2023-01-05 10:30:00, giá 1,5")
	want := "Ngày ngày mười lăm tháng ba năm hai nghìn không trăm hai mươi ba" +
		" lúc ngày năm tháng một năm hai nghìn không trăm hai mươi ba" +
		" giờ mười phút ba mươi giây không, giá một phẩy năm"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
	if strings.ContainsAny(got, "0123456789") {
		t.Errorf("Normalize left digits behind: %q", got)
	}
}

// TestNormalizeNFC verifies decomposed Vietnamese input is composed before
// recognition.
func TestNormalizeNFC(t *testing.T) {
	t.Parallel()

	// "tê" with a combining circumflex (U+0302) over the e.
	decomposed := "te\u0302 5"
	got := Normalize(decomposed)
	want := "tê năm"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, want)
	}
}

// TestNormalizeOversized verifies the input-size guard.
func TestNormalizeOversized(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("a", maxInputBytes+1)
	if got := Normalize(big); got != big {
		t.Error("oversized input was modified")
	}
}

// TestNormalizeHugeDigitRun verifies runs beyond 100 digits are left as-is
// and only spaced away from trailing punctuation by the cleanup pass.
func TestNormalizeHugeDigitRun(t *testing.T) {
	t.Parallel()

	run := strings.Repeat("1", 150)
	got := Normalize(run + "%")
	want := run + " %"
	if got != want {
		t.Errorf("Normalize(150 digits + %%) = %q, want %q", got, want)
	}
}

// TestNormalizeIdempotent verifies a second application is a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"xin chào các bạn!",
		"có 21 người và 3,14 lít",
		"Hẹn 2023-01-05 10:30:00 nhé",
		"22T583XYZ",
		strings.Repeat("9", 150),
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if twice != once {
			t.Errorf("Normalize not idempotent on %q: %q -> %q", input, once, twice)
		}
	}
}

func ExampleNormalize() {
	fmt.Println(Normalize("Hẹn ngày 15/03/2023 nhé"))
	// Output: Hẹn ngày ngày mười lăm tháng ba năm hai nghìn không trăm hai mươi ba nhé
}

func BenchmarkNormalize(b *testing.B) {
	input := strings.Repeat("Hẹn 2023-01-05 10:30:00, giá 1.234 đồng và 3,14 lít. ", 20)
	for i := 0; i < b.N; i++ {
		Normalize(input)
	}
}
