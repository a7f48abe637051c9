// internal/storage/errors.go
package storage

import (
	"errors"
	"fmt"
)

// ErrPersistence 可用 errors.Is 辨識所有 I/O 相關失敗。
var ErrPersistence = errors.New("persistence failure")

// PersistenceError 描述一次失敗的載入或寫入。
type PersistenceError struct {
	Op   string // "load" 或 "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is 讓 errors.Is(err, ErrPersistence) 對任何 PersistenceError 成立。
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
