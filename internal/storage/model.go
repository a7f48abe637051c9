// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// 本層只處理帳戶資料的序列化格式，不涉入任何商業規則；
// 欄位是否合法（帳號範圍、餘額非負等）由 bank 層在還原時檢查。
package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record 為單一帳戶在儲存層的格式，欄位順序即資料檔的欄位順序。
// Password 為已處理過的憑證欄位（bcrypt 雜湊或相容模式下的明文）。
type Record struct {
	FullName      string          `json:"full_name"`
	AccountNumber int64           `json:"account_number"`
	Password      string          `json:"password"`
	Balance       decimal.Decimal `json:"balance"`
	Phone         string          `json:"phone"`
}

// Backend 是帳戶表的整表讀寫介面。
// Load 在資料來源不存在時回傳空切片而非錯誤（首次啟動）。
// Save 以整表覆寫，不做 append。
type Backend interface {
	Load() ([]Record, error)
	Save(records []Record) error
}

// Meta 為 JSON 快照的中繼資料，記錄儲存方式、版本與建立時間。
type Meta struct {
	Storage   string    `json:"storage"`        // 儲存類型，例如 "json_snapshot"
	Version   int       `json:"version"`        // 結構版本號
	Timestamp time.Time `json:"timestamp"`      // 快照建立時間
	Note      string    `json:"note,omitempty"` // 備註欄
}

// Snapshot 為整個帳戶表的 JSON 快照，帳戶依註冊順序排列。
type Snapshot struct {
	Meta     Meta     `json:"_meta"`
	Accounts []Record `json:"accounts"`
}
