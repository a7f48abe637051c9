// internal/console/console_test.go
//
// 以預先寫好的輸入腳本驅動整個互動流程，驗證選單切換、輸入重試與錯誤訊息。
package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"onlinebanking/internal/bank"
	"onlinebanking/internal/credential"
)

func newBank() *bank.Bank {
	return bank.New(nil, bank.Options{Hasher: credential.Hasher{Cost: bcrypt.MinCost}})
}

// run 以 lines 作為使用者輸入執行 console，回傳全部輸出。
func run(t *testing.T, b *bank.Bank, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := New(b, in, &out).Run(context.Background()); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func TestConsoleSession(t *testing.T) {
	b := newBank()
	out := run(t, b,
		"1", "100001", "Alice", "5551234", "secret1", "50", // register
		"2", "100001", "wrong", // bad login
		"2", "100001", "secret1", // login
		"1", "25", // deposit
		"2", "200", // withdraw, insufficient
		"5", // details
		"0", // logout
		"0", // exit
	)
	assertContains(t, out,
		"Welcome, Alice! Your account is ready.",
		"Login failed: Account or password incorrect.",
		"Login successful. Hello, Alice.",
		"NEW Balance: ZMW 75.00",
		"Insufficient funds.",
		"Your Account Overview",
		"Current Balance:",
		"You have successfully logged out.",
		"Goodbye",
	)
	if _, ok := b.Current(); ok {
		t.Fatal("should be logged out at the end")
	}
}

func TestConsoleRegisterRetries(t *testing.T) {
	b := newBank()
	out := run(t, b,
		"1", "abc", "42", "100001", "Bob", "555", "pw", "5", "ten", "10",
		"0",
	)
	if got := strings.Count(out, "Account number must be a 6-digit number."); got != 2 {
		t.Fatalf("account number retries=%d want 2:\n%s", got, out)
	}
	if got := strings.Count(out, "Invalid deposit amount."); got != 2 {
		t.Fatalf("deposit retries=%d want 2:\n%s", got, out)
	}
	if b.Len() != 1 {
		t.Fatalf("accounts=%d want 1", b.Len())
	}
}

func TestConsoleTransferAndPassword(t *testing.T) {
	b := newBank()
	if _, err := b.Register("Alice", 100001, "pw1", "1", bank.MinInitialDeposit.Mul(bank.MinInitialDeposit)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Register("Bob", 100002, "pw2", "2", bank.MinInitialDeposit); err != nil {
		t.Fatal(err)
	}
	out := run(t, b,
		"2", "100001", "pw1",
		"3", "100001", "5", // self transfer
		"3", "123456", "5", // unknown recipient
		"3", "100002", "30", // ok
		"4", "bad", "n1", "n1", // wrong current password
		"4", "pw1", "n1", "n2", // mismatch
		"4", "pw1", "n1", "n1", // ok
		"7", // unknown command
		"0", "0",
	)
	assertContains(t, out,
		"Please use Deposit/Withdrawal for self-account operations.",
		"Recipient account not found in the system.",
		"Transferred ZMW 30.00 to account 100002.",
		"Your New Balance: ZMW 70.00",
		"Current password incorrect. Aborting change.",
		"New passwords did not match. No changes made.",
		"Password updated for account 100001.",
		"Command not recognized. Try again.",
	)
	if err := b.Login(100001, "n1"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}
}

func TestConsoleBadAmountReturnsToMenu(t *testing.T) {
	b := newBank()
	if _, err := b.Register("Alice", 100001, "pw", "1", bank.MinInitialDeposit); err != nil {
		t.Fatal(err)
	}
	out := run(t, b, "2", "100001", "pw", "1", "-5", "1", "abc", "0", "0")
	if got := strings.Count(out, "Invalid amount"); got != 2 {
		t.Fatalf("invalid amount messages=%d:\n%s", got, out)
	}
}

// TestConsoleEOF 輸入提前結束時正常返回。
func TestConsoleEOF(t *testing.T) {
	var out bytes.Buffer
	if err := New(newBank(), strings.NewReader("1\n100001\n"), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run err=%v", err)
	}
}

func TestConsoleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := New(newBank(), strings.NewReader("0\n"), &out).Run(ctx); err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
