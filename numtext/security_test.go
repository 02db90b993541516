package numtext

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Convert("123")
			Convert("2300095")
			Convert("0")
			ConvertDecimal("3", "14")
			ConvertDigits("0501234")
		}()
	}

	wg.Wait()
}

// TestConvertMalformed verifies Convert handles malformed input gracefully.
func TestConvertMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		"-1",
		"+1",
		"1.5",
		"1,5",
		"１２３", // full-width digits
		strings.Repeat("9", 10_000),
		strings.Repeat("a", 10_000),
	}

	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Convert(%q) panicked: %v", input, r)
				}
			}()
			_ = Convert(input)
			_ = ConvertDigits(input)
			_ = ConvertDecimal(input, input)
		})
	}
}

// TestConvertVeryLong verifies the digit-by-digit fallback engages past the
// grouped-conversion bound instead of overflowing.
func TestConvertVeryLong(t *testing.T) {
	input := strings.Repeat("9", 100)
	got := Convert(input)

	words := strings.Split(got, " ")
	if len(words) != len(input) {
		t.Fatalf("Convert(%d nines) = %d words, want one word per digit", len(input), len(words))
	}
	for _, w := range words {
		if w != "chín" {
			t.Fatalf("Convert(nines) produced unexpected word %q", w)
		}
	}
}
