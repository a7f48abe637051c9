// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤都會原樣回傳給前端（console），前端顯示訊息後繼續互動，
// 沒有任何一個會讓程式結束。
// 儲存失敗另由 storage.PersistenceError 表示，可用 storage.ErrPersistence 辨識。

package bank

import "errors"

var (
	// ErrValidation 為所有輸入格式或範圍錯誤的共同上層；
	// 任何 *ValidationError 都滿足 errors.Is(err, ErrValidation)。
	ErrValidation = errors.New("invalid input")

	// ErrInvalidAccountNumber 帳號不是 100000–999999 之間的整數。
	ErrInvalidAccountNumber = errors.New("account number must be a 6-digit number")

	// ErrInvalidInitialDeposit 開戶金額低於 10.00。
	ErrInvalidInitialDeposit = errors.New("initial deposit must be at least 10.00")

	// ErrInvalidAmount 金額不是正數，或超過兩位小數。
	ErrInvalidAmount = errors.New("amount must be a positive number with at most two decimals")

	// ErrInvalidField 姓名、密碼或電話為空、過長或含有空白。
	ErrInvalidField = errors.New("must be non-empty, within its length limit and free of whitespace")

	// ErrPasswordMismatch 兩次輸入的新密碼不一致。
	ErrPasswordMismatch = errors.New("new passwords do not match")

	// ErrDuplicateAccount 帳號已被註冊。
	ErrDuplicateAccount = errors.New("account number already exists")

	// ErrCapacityExceeded 帳戶表已滿。
	ErrCapacityExceeded = errors.New("account limit reached")

	// ErrAccountNotFound 登入時帳號不存在。
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecipientNotFound 轉帳對象不存在。
	ErrRecipientNotFound = errors.New("recipient account not found")

	// ErrSelfTransfer 轉帳對象即為自己；自己的帳戶請用存款或提款。
	ErrSelfTransfer = errors.New("cannot transfer to your own account")

	// ErrInvalidCredentials 密碼錯誤。
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInsufficientFunds 餘額不足，提款或轉帳失敗。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotAuthenticated 尚未登入就呼叫交易操作。
	ErrNotAuthenticated = errors.New("not logged in")
)

// ValidationError 標示哪個欄位驗證失敗。
// errors.Is 同時可比對 ErrValidation 與具體的 sentinel（如 ErrInvalidAmount）。
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
