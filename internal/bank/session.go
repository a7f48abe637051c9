// internal/bank/session.go
//
// Session 追蹤唯一一個已登入的帳戶（以帳號參照，不複製帳戶資料）。
// 狀態只有兩種：LoggedOut 與 LoggedIn(帳號)。不寫入檔案，重新啟動即為 LoggedOut。
package bank

import "onlinebanking/internal/credential"

type Session struct {
	store  *Store
	hasher credential.Hasher
	number AccountNumber
	active bool
}

func NewSession(store *Store, hasher credential.Hasher) *Session {
	return &Session{store: store, hasher: hasher}
}

// Login 驗證帳號與密碼；成功時取代任何既有的登入狀態。
// 失敗時 session 維持原狀。
func (s *Session) Login(n AccountNumber, password string) error {
	a, ok := s.store.Get(n)
	if !ok {
		return ErrAccountNotFound
	}
	if !s.hasher.Verify(a.Password, password) {
		return ErrInvalidCredentials
	}
	s.number, s.active = n, true
	return nil
}

// Logout 無條件登出，即使原本就沒有登入。
func (s *Session) Logout() {
	s.number, s.active = 0, false
}

// Current 回傳目前登入的帳號。
func (s *Session) Current() (AccountNumber, bool) {
	return s.number, s.active
}

// require 供交易操作使用：未登入時回傳 ErrNotAuthenticated。
func (s *Session) require() (AccountNumber, error) {
	if !s.active {
		return 0, ErrNotAuthenticated
	}
	return s.number, nil
}
