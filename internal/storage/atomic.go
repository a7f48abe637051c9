// internal/storage/atomic.go
package storage

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic 以「原子寫入」取代目標檔：
//  1. 在同一目錄建立暫存檔並寫入全部內容。
//  2. Sync 後關閉。
//  3. os.Rename() 取代正式檔案。
//
// 任一步驟失敗時刪除暫存檔，原檔維持不變。
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		f.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
