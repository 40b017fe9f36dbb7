package pretty

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Int3Digits formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func Int3Digits(n int64) string {
	return printer.Sprintf("%d", n)
}
