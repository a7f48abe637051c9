// internal/credential/credential.go
//
// Package credential 負責密碼的儲存形式與比對。
// 預設以 bcrypt（含 salt 的單向雜湊）保存；相容模式則保留明文，
// 以便與舊版資料檔逐位元組相容。比對明文時使用常數時間比較。
package credential

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher 決定新密碼的儲存方式。零值使用 bcrypt.DefaultCost。
type Hasher struct {
	Cost      int
	Plaintext bool
}

// Hash 產生可寫入資料檔的密碼欄位。bcrypt 輸出不含空白字元，
// 因此不會破壞以空白分隔的檔案格式。
func (h Hasher) Hash(password string) (string, error) {
	if h.Plaintext {
		return password, nil
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("credential: hash: %w", err)
	}
	return string(out), nil
}

// Verify 比對使用者輸入與已儲存的欄位。
// 欄位若是 bcrypt 雜湊則以 bcrypt 驗證，否則視為舊版明文。
func (h Hasher) Verify(stored, password string) bool {
	if IsHashed(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		return err == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// IsHashed 判斷欄位是否為 bcrypt 雜湊（$2a$ / $2b$ / $2y$）。
func IsHashed(stored string) bool {
	if len(stored) != 60 {
		return false
	}
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, p) {
			_, err := bcrypt.Cost([]byte(stored))
			return err == nil
		}
	}
	return false
}
