// internal/money/money_test.go
package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestIsCents(t *testing.T) {
	for _, s := range []string{"0", "0.01", "45.00", "1.500", "999999999999999.99", "1e3"} {
		if !IsCents(decimal.RequireFromString(s)) {
			t.Fatalf("IsCents(%s)=false", s)
		}
	}
	for _, s := range []string{"45.005", "0.001", "1e15", "1234567890123456", "1e-19"} {
		if IsCents(decimal.RequireFromString(s)) {
			t.Fatalf("IsCents(%s)=true", s)
		}
	}
}

// TestHugeExponentReturnsQuickly 極端指數必須立即被拒絕，不得進行 Round。
func TestHugeExponentReturnsQuickly(t *testing.T) {
	done := make(chan bool, 1)
	go func() {
		ok := true
		for _, s := range []string{"1e200000000", "-1e200000000", "1e-200000000"} {
			ok = ok && !InRange(decimal.RequireFromString(s)) && !IsCents(decimal.RequireFromString(s))
		}
		done <- ok
	}()
	select {
	case ok := <-done:
		if !ok {
			t.Fatal("huge exponents must be out of range")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("range check did not return within 5s")
	}
}
