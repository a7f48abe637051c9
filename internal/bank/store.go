// internal/bank/store.go
//
// Store 是帳戶表的唯一擁有者：依註冊順序保存帳戶，並以帳號建立索引。
// 每次變更後立即整表寫回後端（write-through）；寫入失敗時撤銷記憶體中的變更，
// 讓記憶體與檔案維持一致。Store 本身不加鎖，由 Bank 的互斥鎖保護。
package bank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/logging"
	"onlinebanking/internal/money"
	"onlinebanking/internal/storage"
)

// DefaultCapacity 沿用舊系統的帳戶上限。
const DefaultCapacity = 100

type Store struct {
	backend  storage.Backend
	capacity int
	accounts []Account
	index    map[AccountNumber]int
}

// NewStore 建立空的帳戶表。backend 可為 nil（純記憶體，不持久化）；
// capacity <= 0 時使用 DefaultCapacity。
func NewStore(backend storage.Backend, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		backend:  backend,
		capacity: capacity,
		index:    make(map[AccountNumber]int),
	}
}

// Load 從後端讀入整個帳戶表，回傳實際載入的帳戶數。
func (s *Store) Load() (int, error) {
	if s.backend == nil {
		return 0, nil
	}
	recs, err := s.backend.Load()
	if err != nil {
		return 0, err
	}
	return s.Restore(recs), nil
}

// Restore 以 records 重建帳戶表。遇到第一筆無法接受的紀錄
// （超過容量、帳號重複或欄位不合法）即停止，其後的紀錄全部捨棄。
func (s *Store) Restore(records []storage.Record) int {
	s.accounts = make([]Account, 0, len(records))
	s.index = make(map[AccountNumber]int, len(records))
	for i, r := range records {
		a := accountFromRecord(r)
		if err := s.admit(a); err != nil {
			logging.Warnf("stopped loading at record %d (account %d): %v; %d record(s) dropped",
				i+1, r.AccountNumber, err, len(records)-i)
			break
		}
		s.append(a)
	}
	return len(s.accounts)
}

func (s *Store) admit(a Account) error {
	if len(s.accounts) >= s.capacity {
		return ErrCapacityExceeded
	}
	if _, ok := s.index[a.Number]; ok {
		return ErrDuplicateAccount
	}
	if err := ValidateAccountNumber(a.Number); err != nil {
		return err
	}
	if err := ValidateName(a.FullName); err != nil {
		return err
	}
	if err := ValidatePhone(a.Phone); err != nil {
		return err
	}
	if a.Password == "" || a.Balance.IsNegative() || !money.IsCents(a.Balance) {
		return errors.New("malformed account record")
	}
	return nil
}

// Register 新增帳戶並寫回後端。候選帳戶的欄位格式由呼叫端先行驗證。
func (s *Store) Register(candidate Account) (AccountNumber, error) {
	if len(s.accounts) >= s.capacity {
		return 0, ErrCapacityExceeded
	}
	if _, ok := s.index[candidate.Number]; ok {
		return 0, ErrDuplicateAccount
	}
	s.append(candidate)
	err := s.commit(func() {
		s.accounts = s.accounts[:len(s.accounts)-1]
		delete(s.index, candidate.Number)
	})
	if err != nil {
		return 0, err
	}
	return candidate.Number, nil
}

func (s *Store) append(a Account) {
	s.index[a.Number] = len(s.accounts)
	s.accounts = append(s.accounts, a)
}

// Find 依帳號回傳帳戶在表中的位置。
func (s *Store) Find(n AccountNumber) (int, bool) {
	i, ok := s.index[n]
	return i, ok
}

// Get 回傳帳戶的值拷貝。
func (s *Store) Get(n AccountNumber) (Account, bool) {
	i, ok := s.index[n]
	if !ok {
		return Account{}, false
	}
	return s.accounts[i], true
}

// Accounts 依註冊順序回傳所有帳戶的拷貝。
func (s *Store) Accounts() []Account {
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) Len() int      { return len(s.accounts) }
func (s *Store) Capacity() int { return s.capacity }

// mutateBalance 只改記憶體；呼叫端必須先 Find，並在之後 commit。
func (s *Store) mutateBalance(n AccountNumber, delta decimal.Decimal) {
	i, ok := s.index[n]
	if !ok {
		panic(fmt.Sprintf("bank: mutateBalance on unknown account %d", n))
	}
	s.accounts[i].Balance = s.accounts[i].Balance.Add(delta)
}

func (s *Store) setPassword(n AccountNumber, stored string) {
	i, ok := s.index[n]
	if !ok {
		panic(fmt.Sprintf("bank: setPassword on unknown account %d", n))
	}
	s.accounts[i].Password = stored
}

// commit 將目前的表寫回後端；失敗時執行 undo 還原記憶體狀態。
func (s *Store) commit(undo func()) error {
	if err := s.save(); err != nil {
		undo()
		return err
	}
	return nil
}

func (s *Store) save() error {
	if s.backend == nil {
		return nil
	}
	recs := s.records()
	if err := s.backend.Save(recs); err != nil {
		logging.Errorf("write-through of %d account(s) failed: %v", len(recs), err)
		if !errors.Is(err, storage.ErrPersistence) {
			err = &storage.PersistenceError{Op: "save", Err: err}
		}
		return err
	}
	return nil
}

func (s *Store) records() []storage.Record {
	out := make([]storage.Record, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = a.record()
	}
	return out
}
