// Word tables for Vietnamese date and time phrases.
package datetext

const (
	wordDay    = "ngày"
	wordMonth  = "tháng"
	wordYear   = "năm"
	wordHour   = "giờ"
	wordMinute = "phút"
	wordSecond = "giây"
)

// months maps the trimmed month numeral to its spoken form.
// Month 4 is irregular: "tháng tư", never "tháng bốn".
var months = map[string]string{
	"1":  "một",
	"2":  "hai",
	"3":  "ba",
	"4":  "tư",
	"5":  "năm",
	"6":  "sáu",
	"7":  "bảy",
	"8":  "tám",
	"9":  "chín",
	"10": "mười",
	"11": "mười một",
	"12": "mười hai",
}
