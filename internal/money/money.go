// internal/money/money.go
//
// Package money 集中金額的格式規則：最多 15 位整數、固定兩位小數。
// decimal 接受指數寫法（如 1e200000000），直接 Round 或比較這類值會建立極大的
// big.Int，因此所有檢查都先用 InRange 排除，再做任何算術。
package money

import "github.com/shopspring/decimal"

const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 18
)

// InRange 只看係數位數與指數，不做任何 big.Int 運算。
func InRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}

// IsCents 判斷金額是否落在範圍內且剛好是整數分（最多兩位小數）。
func IsCents(d decimal.Decimal) bool {
	return InRange(d) && d.Equal(d.Round(2))
}
