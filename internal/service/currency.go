package service

import (
	"github.com/ikay-store/api/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR 按印度卢比习惯格式化金额
// 采用印度分组（₹1,49,999），展示时不保留小数位。
func FormatINR(amount models.Money) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(
		amount.Decimal.InexactFloat64(),
		number.MaxFractionDigits(0),
	))
}
