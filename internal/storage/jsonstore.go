// internal/storage/jsonstore.go
//
// 提供 JSON 快照 (Snapshot) 的序列化與反序列化實作。
// 可作為文字檔以外的另一種後端（storage.format: json），
// 也是 `banking export` 的輸出格式。
// 寫入同樣採「原子寫入」：先寫暫存檔，再以 rename() 取代原檔。
package storage

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"
)

const (
	snapshotKind    = "json_snapshot"
	snapshotVersion = 1
)

// JSONSnapshot 是以 JSON 快照檔為後端的 Backend。
type JSONSnapshot struct {
	Path string
}

// NewJSONSnapshot 建立指向 path 的 JSON 後端。
func NewJSONSnapshot(path string) *JSONSnapshot {
	return &JSONSnapshot{Path: path}
}

// Load 讀取快照；檔案不存在時回傳空結果。
func (j *JSONSnapshot) Load() ([]Record, error) {
	snap, err := LoadSnapshot(j.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: j.Path, Err: err}
	}
	return snap.Accounts, nil
}

// Save 將帳戶表包成快照後寫入。
func (j *JSONSnapshot) Save(records []Record) error {
	snap := Snapshot{Accounts: records}
	if err := SaveSnapshot(j.Path, snap); err != nil {
		return &PersistenceError{Op: "save", Path: j.Path, Err: err}
	}
	return nil
}

// LoadSnapshot 讀取指定路徑的 JSON 快照。
// 若檔案不存在或格式錯誤，回傳對應錯誤給上層。
func LoadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&snap)
	return snap, err
}

// SaveSnapshot 設定 Meta 後以原子方式寫入 JSON 檔。
func SaveSnapshot(path string, snap Snapshot) error {
	stampMeta(&snap)
	return writeAtomic(path, func(w io.Writer) error {
		return EncodeSnapshot(w, snap)
	})
}

// EncodeSnapshot 以縮排格式輸出快照，方便人工檢視。
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	stampMeta(&snap)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func stampMeta(snap *Snapshot) {
	snap.Meta.Storage = snapshotKind
	snap.Meta.Version = snapshotVersion
	if snap.Meta.Timestamp.IsZero() {
		snap.Meta.Timestamp = time.Now()
	}
}
