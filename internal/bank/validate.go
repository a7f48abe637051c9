// internal/bank/validate.go
//
// 純函式的輸入檢查，不讀取帳戶表。
// 帳號唯一性與餘額是否足夠屬於狀態相關檢查，分別由 Store 與 Bank 處理。
package bank

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/money"
)

const (
	MinAccountNumber AccountNumber = 100000
	MaxAccountNumber AccountNumber = 999999

	MaxNameLen     = 49
	MaxPasswordLen = 19
	MaxPhoneLen    = 14
)

// MinInitialDeposit 是開戶時的最低存款。
var MinInitialDeposit = decimal.NewFromInt(10)

// ParseAccountNumber 解析並檢查帳號。
func ParseAccountNumber(s string) (AccountNumber, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalid("account number", ErrInvalidAccountNumber)
	}
	if err := ValidateAccountNumber(AccountNumber(n)); err != nil {
		return 0, err
	}
	return AccountNumber(n), nil
}

// ValidateAccountNumber 檢查帳號是否落在六位數範圍內。
func ValidateAccountNumber(n AccountNumber) error {
	if n < MinAccountNumber || n > MaxAccountNumber {
		return invalid("account number", ErrInvalidAccountNumber)
	}
	return nil
}

// ParseAmount 把文字轉成金額，並拒絕超出範圍的指數寫法（如 1e200000000）；
// 正負與小數位數由 ValidateAmount 判斷。
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !money.InRange(d) {
		return decimal.Zero, invalid("amount", ErrInvalidAmount)
	}
	return d, nil
}

// ValidateAmount 用於存款、提款與轉帳：必須 > 0 且最多兩位小數。
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() || !money.IsCents(d) {
		return invalid("amount", ErrInvalidAmount)
	}
	return nil
}

// ValidateInitialDeposit 開戶金額必須 >= 10.00。
func ValidateInitialDeposit(d decimal.Decimal) error {
	if !money.IsCents(d) || d.LessThan(MinInitialDeposit) {
		return invalid("initial deposit", ErrInvalidInitialDeposit)
	}
	return nil
}

// ConfirmPassword 兩次輸入必須逐位元組相同。
func ConfirmPassword(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func ValidateName(name string) error {
	return checkField("full name", name, MaxNameLen)
}

func ValidatePassword(password string) error {
	return checkField("password", password, MaxPasswordLen)
}

func ValidatePhone(phone string) error {
	return checkField("phone number", phone, MaxPhoneLen)
}

// checkField 長度以位元組計算；資料檔以空白分隔欄位，所以不允許任何空白。
func checkField(field, v string, max int) error {
	if len(v) == 0 || len(v) > max || strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return invalid(field, ErrInvalidField)
	}
	return nil
}
