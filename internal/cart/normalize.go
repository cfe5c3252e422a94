package cart

import (
	"regexp"

	"github.com/ikay-store/api/internal/models"

	"github.com/shopspring/decimal"
)

// 只保留数字与小数点，其余字符（币种符号、千分位逗号、空格）全部剥除。
var priceSanitizer = regexp.MustCompile(`[^0-9.]`)

// NormalizePrice 把格式化价格字符串归一化为金额
// 例如 "₹1,499.00" -> 1499.00。剥除后不含数字、或无法解析为十进制数
// （如出现多个小数点）时归一化为 0，绝不报错。
func NormalizePrice(raw string) models.Money {
	cleaned := priceSanitizer.ReplaceAllString(raw, "")
	if cleaned == "" {
		return models.Money{}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return models.Money{}
	}
	if d.IsNegative() {
		return models.Money{}
	}
	return models.NewMoneyFromDecimal(d)
}

// validQuantity 数量守卫
// 目标数量小于 1 的请求整体拒绝：这是防误触的保护，不是删除入口。
func validQuantity(quantity int) bool {
	return quantity >= 1
}
