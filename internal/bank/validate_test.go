// internal/bank/validate_test.go
package bank

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseAccountNumber(t *testing.T) {
	ok := map[string]AccountNumber{"100000": 100000, "999999": 999999, " 100001 ": 100001}
	for in, want := range ok {
		got, err := ParseAccountNumber(in)
		if err != nil || got != want {
			t.Fatalf("ParseAccountNumber(%q)=%d,%v want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"99999", "1000000", "-100001", "abc", "", "100001.5"} {
		_, err := ParseAccountNumber(in)
		if !errors.Is(err, ErrInvalidAccountNumber) || !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseAccountNumber(%q) err=%v", in, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	for _, s := range []string{"0.01", "1", "25.00", "1.500"} {
		if err := ValidateAmount(dec(s)); err != nil {
			t.Fatalf("ValidateAmount(%s) err=%v", s, err)
		}
	}
	for _, s := range []string{"0", "-1", "0.001", "10.125"} {
		if err := ValidateAmount(dec(s)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ValidateAmount(%s) err=%v", s, err)
		}
	}
	if _, err := ParseAmount("ten"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("ParseAmount err=%v", err)
	}
}

func TestValidateInitialDeposit(t *testing.T) {
	if err := ValidateInitialDeposit(dec("10.00")); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"9.99", "0", "-50"} {
		if err := ValidateInitialDeposit(dec(s)); !errors.Is(err, ErrInvalidInitialDeposit) {
			t.Fatalf("ValidateInitialDeposit(%s) err=%v", s, err)
		}
	}
}

// TestHugeExponentAmountsRejected 指數寫法的極大或極小金額要立即被拒絕，不能卡在 Round 或比較上。
func TestHugeExponentAmountsRejected(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, in := range []string{"1e200000000", "-1e200000000", "1e-200000000", "1e16"} {
			if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q) err=%v", in, err)
			}
			d := dec(in)
			if err := ValidateAmount(d); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ValidateAmount(%s) err=%v", in, err)
			}
			if err := ValidateInitialDeposit(d); !errors.Is(err, ErrInvalidInitialDeposit) {
				t.Errorf("ValidateInitialDeposit(%s) err=%v", in, err)
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("huge exponent amounts were not rejected in time")
	}
}

func TestConfirmPassword(t *testing.T) {
	if err := ConfirmPassword("abc", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := ConfirmPassword("abc", "abC"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err=%v", err)
	}
}

func TestFieldRules(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) error
		ok   string
		max  int
	}{
		{"name", ValidateName, "Alice", MaxNameLen},
		{"password", ValidatePassword, "secret1", MaxPasswordLen},
		{"phone", ValidatePhone, "555-1234", MaxPhoneLen},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.fn(c.ok); err != nil {
				t.Fatal(err)
			}
			if err := c.fn(strings.Repeat("x", c.max)); err != nil {
				t.Fatalf("max length rejected: %v", err)
			}
			for _, bad := range []string{"", strings.Repeat("x", c.max+1), "a b", "a\tb"} {
				err := c.fn(bad)
				var ve *ValidationError
				if !errors.Is(err, ErrInvalidField) || !errors.As(err, &ve) {
					t.Fatalf("%q: err=%v", bad, err)
				}
			}
		})
	}
}
