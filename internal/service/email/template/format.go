package template

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// IST 收据日期统一按印度时间展示
var IST = time.FixedZone("IST", 5*60*60+30*60)

const dateLayout = "02/01/2006"

// inPrinter en-IN 的数字格式最后三位一组，之前每两位一组
var inPrinter = message.NewPrinter(language.Make("en-IN"))

// FormatINR 例如 ₹1,23,456.50
func FormatINR(amount float64) string {
	s := inPrinter.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if amount < 0 {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatDate 零值时间按当前时间处理
func FormatDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(IST).Format(dateLayout)
}
