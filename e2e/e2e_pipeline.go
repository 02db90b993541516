//go:build ignore

// e2e_pipeline exercises all four modules in a single run and writes
// structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ldblckrs-258/vixtts-demo/datetext"
	"github.com/ldblckrs-258/vixtts-demo/normalize"
	"github.com/ldblckrs-258/vixtts-demo/numtext"
	"github.com/ldblckrs-258/vixtts-demo/tokenizer"
)

const (
	logPath      = "data/e2e_pipeline.log"
	maxDetailLen = 200
	separator    = "=========================================================="
)

// ---------- test corpus ----------

const textNews = `Sáng 15/03/2023, hội nghị khai mạc tại Hà Nội với 250 đại biểu tham dự.`

const textSchedule = `Chuyến bay khởi hành lúc 2026-08-25 06:45:00 từ sân bay Nội Bài.`

const textMeasure = `Nhiệt độ trung bình là 27,4 độ, lượng mưa đạt 1.832 mm mỗi năm.`

const textMixed = `Biển số 30A12345 được cấp ngày 01-04-2024, lệ phí 150000 đồng.`

const textPlain = `Hôm nay trời đẹp, chúng ta đi dạo nhé!`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func main() {
	f, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("creating %s: %v", logPath, err)
	}
	defer func() { _ = f.Close() }()

	var results []testResult
	results = append(results, numtextSuite()...)
	results = append(results, datetextSuite()...)
	results = append(results, tokenizerSuite()...)
	results = append(results, normalizeSuite()...)

	passed, failed := 0, 0
	for _, r := range results {
		status := "PASS"
		if r.passed {
			passed++
		} else {
			failed++
			status = "FAIL"
		}
		fmt.Fprintf(f, "%s %-10s %-40s %s\n", status, r.module, r.name, r.duration.Round(time.Microsecond))
		if r.detail != "" {
			fmt.Fprintf(f, "     %s\n", r.detail)
		}
	}

	fmt.Fprintln(f, separator)
	fmt.Fprintf(f, "total=%d passed=%d failed=%d\n", len(results), passed, failed)
	fmt.Printf("e2e: total=%d passed=%d failed=%d (see %s)\n", len(results), passed, failed, logPath)

	if failed > 0 {
		os.Exit(1)
	}
}

// ---------- suites ----------

func numtextSuite() []testResult {
	var results []testResult

	expect := map[string]string{
		"0":       "không",
		"21":      "hai mươi mốt",
		"105":     "một trăm lẻ năm",
		"1005":    "một nghìn năm",
		"2023":    "hai nghìn không trăm hai mươi ba",
		"1000000": "một triệu",
	}
	for input, want := range expect {
		start := time.Now()
		if got := numtext.Convert(input); got != want {
			results = append(results, fail("numtext", "convert "+input, got, start))
		} else {
			results = append(results, pass("numtext", "convert "+input, start))
		}
	}

	start := time.Now()
	if got := numtext.ConvertDecimal("3", "14"); got != "ba phẩy một bốn" {
		results = append(results, fail("numtext", "decimal 3.14", got, start))
	} else {
		results = append(results, pass("numtext", "decimal 3.14", start))
	}

	return results
}

func datetextSuite() []testResult {
	var results []testResult

	start := time.Now()
	want := "ngày mười lăm tháng ba năm hai nghìn không trăm hai mươi ba"
	if got := datetext.ConvertDate("15", "03", "2023"); got != want {
		results = append(results, fail("datetext", "date 15/03/2023", got, start))
	} else {
		results = append(results, pass("datetext", "date 15/03/2023", start))
	}

	start = time.Now()
	want = "ngày năm tháng một năm hai nghìn không trăm hai mươi ba giờ mười phút ba mươi giây không"
	if got := datetext.ConvertDatetime("2023", "01", "05", "10", "30", "00"); got != want {
		results = append(results, fail("datetext", "datetime", got, start))
	} else {
		results = append(results, pass("datetext", "datetime", start))
	}

	return results
}

func tokenizerSuite() []testResult {
	var results []testResult

	start := time.Now()
	for _, input := range []string{textNews, textSchedule, textMeasure, textMixed, textPlain} {
		var b strings.Builder
		for _, tok := range tokenizer.WordTokens(input) {
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			results = append(results, fail("tokenizer", "reconstruction", input, start))
			return results
		}
	}
	results = append(results, pass("tokenizer", "reconstruction", start))

	return results
}

func normalizeSuite() []testResult {
	var results []testResult

	corpus := []string{textNews, textSchedule, textMeasure, textMixed, textPlain}
	for i, input := range corpus {
		start := time.Now()
		name := fmt.Sprintf("corpus %d digit-free", i)

		got := normalize.Normalize(input)
		if strings.ContainsAny(got, "0123456789") {
			results = append(results, fail("normalize", name, got, start))
			continue
		}
		if normalize.Normalize(got) != got {
			results = append(results, fail("normalize", name+" idempotence", got, start))
			continue
		}
		results = append(results, pass("normalize", name, start))
	}

	start := time.Now()
	if got := normalize.Normalize(textPlain); got != textPlain {
		results = append(results, fail("normalize", "identity on plain text", got, start))
	} else {
		results = append(results, pass("normalize", "identity on plain text", start))
	}

	return results
}
