// internal/storage/flatfile.go
//
// 純文字帳戶檔：每行一個帳戶，五個以空白分隔的欄位：
//
//	fullName accountNumber password balance phoneNumber
//
// balance 固定輸出兩位小數。格式沒有跳脫機制，因此字串欄位不得含空白。
// 載入時遇到第一個無法解析的行即停止，之後的帳戶全部捨棄（不跳過續讀）。
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/logging"
	"onlinebanking/internal/money"
)

const fieldsPerRecord = 5

// FlatFile 是以單一文字檔為後端的 Backend。
type FlatFile struct {
	Path string
}

// NewFlatFile 建立指向 path 的文字檔後端；檔案可以尚未存在。
func NewFlatFile(path string) *FlatFile {
	return &FlatFile{Path: path}
}

// Load 讀取整個檔案。檔案不存在時回傳空結果（全新安裝）。
func (f *FlatFile) Load() ([]Record, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Infof("no data file at %s, starting fresh", f.Path)
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: f.Path, Err: err}
	}
	defer file.Close()

	recs, err := ReadRecords(file)
	if err != nil {
		return recs, &PersistenceError{Op: "load", Path: f.Path, Err: err}
	}
	return recs, nil
}

// Save 以暫存檔 + rename 覆寫整個檔案。
func (f *FlatFile) Save(records []Record) error {
	err := writeAtomic(f.Path, func(w io.Writer) error {
		return WriteRecords(w, records)
	})
	if err != nil {
		return &PersistenceError{Op: "save", Path: f.Path, Err: err}
	}
	return nil
}

// ReadRecords 逐行解析帳戶。空白行略過；第一個格式錯誤的行（包括超過
// 掃描緩衝的超長行）會結束讀取，已讀到的帳戶照常回傳。只有底層讀取錯誤才回傳 error。
func ReadRecords(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			logging.Warnf("data file line %d: %v; ignoring it and every line after it", line, err)
			return out, nil
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			logging.Warnf("data file line %d: %v; ignoring it and every line after it", line+1, err)
			return out, nil
		}
		return out, err
	}
	return out, nil
}

// ParseRecord 解析單行；欄位數必須剛好為五。
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerRecord {
		return Record{}, fmt.Errorf("want %d fields, got %d", fieldsPerRecord, len(fields))
	}
	num, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("account number %q: %w", fields[1], err)
	}
	bal, err := decimal.NewFromString(fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("balance %q: %w", fields[3], err)
	}
	if bal.IsNegative() {
		return Record{}, fmt.Errorf("balance %q is negative", fields[3])
	}
	if !money.IsCents(bal) {
		return Record{}, fmt.Errorf("balance %q is not a whole number of cents", fields[3])
	}
	return Record{
		FullName:      fields[0],
		AccountNumber: num,
		Password:      fields[2],
		Balance:       bal,
		Phone:         fields[4],
	}, nil
}

// WriteRecords 依序寫出每個帳戶，一行一筆。
func WriteRecords(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s %d %s %s %s\n",
			r.FullName, r.AccountNumber, r.Password, r.Balance.StringFixed(2), r.Phone); err != nil {
			return err
		}
	}
	return nil
}
