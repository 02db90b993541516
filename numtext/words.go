// Word tables for Vietnamese number-to-text conversion.
package numtext

const (
	// maxConvertDigits bounds grouped conversion: longer digit strings do not
	// fit in a uint64 and are read digit by digit instead.
	maxConvertDigits = 18

	wordZero    = "không"
	wordTen     = "mười"
	wordTens    = "mươi"
	wordHundred = "trăm"
	wordOdd     = "lẻ" // empty tens position inside a hundreds group
	wordPoint   = "phẩy"
)

var digits = [10]string{
	"không",
	"một",
	"hai",
	"ba",
	"bốn",
	"năm",
	"sáu",
	"bảy",
	"tám",
	"chín",
}

// unitsAfterTens gives the units-digit word spoken after a non-zero tens part.
// Three digits are irregular in that position; index 0 is unused.
var unitsAfterTens = [10]string{
	"",
	"mốt",
	"hai",
	"ba",
	"tư",
	"lăm",
	"sáu",
	"bảy",
	"tám",
	"chín",
}

// scales is indexed by base-1000 group position; index 0 is the units group.
// The highest index covers every value representable in 18 digits.
var scales = []string{
	"",
	"nghìn",
	"triệu",
	"tỷ",
	"nghìn tỷ",
	"triệu tỷ",
	"tỷ tỷ",
}
