package cart

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ikay-store/api/internal/models"

	"github.com/shopspring/decimal"
)

// Item 购物车行项目
// 同一商品在购物车中至多存在一行，ID 为合并键。
type Item struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    models.Money `json:"price"`
	ImageURL string       `json:"image_url"`
	Quantity int          `json:"quantity"`
	Category string       `json:"category,omitempty"`
}

// Subtotal 行小计（单价 × 数量）
func (i Item) Subtotal() models.Money {
	return models.NewMoneyFromDecimal(i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))))
}

// Product 加入购物车的商品输入
// 来源于商品目录，购物车只关心这几个字段；
// id 允许数字或字符串，price 允许数字或带币种符号的格式化字符串。
type Product struct {
	ID       ID         `json:"id"`
	Name     string     `json:"name"`
	Price    PriceInput `json:"price"`
	ImageURL string     `json:"image_url"`
	Category string     `json:"category,omitempty"`
}

// ID 商品标识（统一归一为字符串）
type ID string

// UnmarshalJSON 兼容数字与字符串两种形式
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String 返回字符串形式
func (id ID) String() string {
	return string(id)
}

// NumericID 尝试把商品标识解析为数字（目录商品主键为自增ID）
func (id ID) NumericID() (uint, bool) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// PriceInput 商品单价输入
// 数字直接取值，字符串走 NormalizePrice 归一化；
// 无法解析的输入静默归一为 0，不报错。
type PriceInput struct {
	models.Money
}

// UnmarshalJSON 解析单价（数字或格式化字符串）
func (p *PriceInput) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		p.Money = NormalizePrice(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		p.Money = models.Money{}
		return nil
	}
	if f < 0 {
		f = 0
	}
	p.Money = models.NewMoneyFromDecimal(decimal.NewFromFloat(f))
	return nil
}
