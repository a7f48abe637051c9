// internal/bank/account.go
//
// 本檔定義 Account 與對外唯讀的 AccountView，不含任何 I/O 細節。
package bank

import (
	"strconv"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/storage"
)

// AccountNumber 是帳戶主鍵，合法範圍為六位數 100000–999999。
type AccountNumber int64

func (n AccountNumber) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Account represents a bank account.
// Password 保存的是憑證欄位（bcrypt 雜湊，或相容模式下的明文），不是使用者輸入。
type Account struct {
	FullName string
	Number   AccountNumber
	Password string
	Balance  decimal.Decimal
	Phone    string
}

// AccountView 為登入帳戶的唯讀快照，不含憑證。
type AccountView struct {
	FullName string          `json:"full_name"`
	Number   AccountNumber   `json:"account_number"`
	Phone    string          `json:"phone"`
	Balance  decimal.Decimal `json:"balance"`
}

// View 回傳不含憑證的值拷貝。
func (a Account) View() AccountView {
	return AccountView{FullName: a.FullName, Number: a.Number, Phone: a.Phone, Balance: a.Balance}
}

func (a Account) record() storage.Record {
	return storage.Record{
		FullName:      a.FullName,
		AccountNumber: int64(a.Number),
		Password:      a.Password,
		Balance:       a.Balance,
		Phone:         a.Phone,
	}
}

func accountFromRecord(r storage.Record) Account {
	return Account{
		FullName: r.FullName,
		Number:   AccountNumber(r.AccountNumber),
		Password: r.Password,
		Balance:  r.Balance,
		Phone:    r.Phone,
	}
}
