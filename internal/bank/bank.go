// internal/bank/bank.go

// Package bank 定義核心商業邏輯：開戶、登入、存款、提款、轉帳、改密碼與查詢。
// Bank 是前端唯一的呼叫入口，持有 Store（帳戶表）與 Session（登入狀態），
// 並以單一互斥鎖 (sync.Mutex) 序列化所有操作，轉帳因此在同一臨界區內完成。
// 金額以 decimal 保存並固定兩位小數，避免浮點誤差。
package bank

import (
	"sync"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/credential"
	"onlinebanking/internal/logging"
	"onlinebanking/internal/storage"
)

// Options 為 Bank 的可調參數。
type Options struct {
	Capacity int
	Hasher   credential.Hasher
}

type Bank struct {
	mu      sync.Mutex
	store   *Store
	session *Session
	hasher  credential.Hasher
}

// New 建立空白銀行實例；backend 為 nil 時只在記憶體中運作。
func New(backend storage.Backend, opts Options) *Bank {
	st := NewStore(backend, opts.Capacity)
	return &Bank{
		store:   st,
		session: NewSession(st, opts.Hasher),
		hasher:  opts.Hasher,
	}
}

// Open 建立銀行並從 backend 載入既有帳戶。
func Open(backend storage.Backend, opts Options) (*Bank, error) {
	b := New(backend, opts)
	n, err := b.store.Load()
	if err != nil {
		return nil, err
	}
	logging.Infof("loaded %d existing account(s)", n)
	return b, nil
}

// Register 驗證所有欄位後開戶，回傳新帳號。
// 帳號重複或帳戶表已滿時不會有任何變更。
func (b *Bank) Register(fullName string, number AccountNumber, password, phone string, initialDeposit decimal.Decimal) (AccountNumber, error) {
	if err := ValidateAccountNumber(number); err != nil {
		return 0, err
	}
	if err := ValidateName(fullName); err != nil {
		return 0, err
	}
	if err := ValidatePhone(phone); err != nil {
		return 0, err
	}
	if err := ValidatePassword(password); err != nil {
		return 0, err
	}
	if err := ValidateInitialDeposit(initialDeposit); err != nil {
		return 0, err
	}
	stored, err := b.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.store.Register(Account{
		FullName: fullName,
		Number:   number,
		Password: stored,
		Balance:  initialDeposit.Round(2),
		Phone:    phone,
	})
	if err != nil {
		return 0, err
	}
	logging.Infof("registered account %d", n)
	return n, nil
}

// Login 成功後取代任何既有的登入。
func (b *Bank) Login(number AccountNumber, password string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.session.Login(number, password); err != nil {
		logging.Warnf("login failed for account %d: %v", number, err)
		return err
	}
	logging.Debugf("account %d logged in", number)
	return nil
}

func (b *Bank) Logout() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session.Logout()
}

// Current 回傳目前登入的帳號。
func (b *Bank) Current() (AccountNumber, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Current()
}

// Details 回傳登入帳戶的唯讀快照；未登入時 ok 為 false。
func (b *Bank) Details() (AccountView, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.session.Current()
	if !ok {
		return AccountView{}, false
	}
	a, ok := b.store.Get(n)
	if !ok {
		return AccountView{}, false
	}
	return a.View(), true
}

// Deposit 存款並寫回，回傳新餘額。
func (b *Bank) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	self, err := b.session.require()
	if err != nil {
		return decimal.Zero, err
	}

	b.store.mutateBalance(self, amount)
	if err := b.store.commit(func() { b.store.mutateBalance(self, amount.Neg()) }); err != nil {
		return decimal.Zero, err
	}
	a, _ := b.store.Get(self)
	return a.Balance, nil
}

// Withdraw 提款：金額不得超過餘額（維持非負）。餘額不足時不寫檔。
func (b *Bank) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	self, err := b.session.require()
	if err != nil {
		return decimal.Zero, err
	}

	a, _ := b.store.Get(self)
	if amount.GreaterThan(a.Balance) {
		return decimal.Zero, ErrInsufficientFunds
	}
	b.store.mutateBalance(self, amount.Neg())
	if err := b.store.commit(func() { b.store.mutateBalance(self, amount) }); err != nil {
		return decimal.Zero, err
	}
	a, _ = b.store.Get(self)
	return a.Balance, nil
}

// Transfer 為單一臨界區內的原子操作：
// 1) 檢核金額 → 2) 收款帳戶存在 → 3) 不得轉給自己 → 4) 餘額足夠 →
// 5) 同步扣款與入帳 → 6) 一次整表寫回。
// 任一步驟失敗（含寫回失敗）皆不會留下任何帳戶變更；雙方餘額總和不變。
func (b *Bank) Transfer(recipient AccountNumber, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	self, err := b.session.require()
	if err != nil {
		return decimal.Zero, err
	}

	if _, ok := b.store.Find(recipient); !ok {
		return decimal.Zero, ErrRecipientNotFound
	}
	if recipient == self {
		return decimal.Zero, ErrSelfTransfer
	}
	from, _ := b.store.Get(self)
	if from.Balance.LessThan(amount) {
		return decimal.Zero, ErrInsufficientFunds
	}

	b.store.mutateBalance(self, amount.Neg())
	b.store.mutateBalance(recipient, amount)
	err = b.store.commit(func() {
		b.store.mutateBalance(recipient, amount.Neg())
		b.store.mutateBalance(self, amount)
	})
	if err != nil {
		return decimal.Zero, err
	}
	logging.Debugf("transferred %s from %d to %d", amount.StringFixed(2), self, recipient)
	from, _ = b.store.Get(self)
	return from.Balance, nil
}

// ChangePassword 需要正確的舊密碼與兩次一致的新密碼；任何一項不符都不會修改。
func (b *Bank) ChangePassword(oldPassword, newPassword, confirmPassword string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	self, err := b.session.require()
	if err != nil {
		return err
	}

	a, _ := b.store.Get(self)
	if !b.hasher.Verify(a.Password, oldPassword) {
		return ErrInvalidCredentials
	}
	if err := ConfirmPassword(newPassword, confirmPassword); err != nil {
		return err
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	stored, err := b.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	prev := a.Password
	b.store.setPassword(self, stored)
	if err := b.store.commit(func() { b.store.setPassword(self, prev) }); err != nil {
		return err
	}
	logging.Infof("password updated for account %d", self)
	return nil
}

// Snapshot 匯出整個帳戶表（含憑證欄位），供 JSON 匯出使用。
func (b *Bank) Snapshot() storage.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return storage.Snapshot{
		Meta: storage.Meta{
			Note: "exported ledger; password fields are stored credentials",
		},
		Accounts: b.store.records(),
	}
}

// Len 回傳目前帳戶數。
func (b *Bank) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Len()
}
