// internal/bank/session_test.go
package bank

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"onlinebanking/internal/credential"
)

func newSessionFixture(t *testing.T) (*Store, *Session) {
	t.Helper()
	h := credential.Hasher{Cost: bcrypt.MinCost}
	s := NewStore(nil, 0)
	for _, n := range []AccountNumber{100001, 100002} {
		stored, err := h.Hash("pw" + n.String())
		if err != nil {
			t.Fatal(err)
		}
		a := acct(n, "10")
		a.Password = stored
		if _, err := s.Register(a); err != nil {
			t.Fatal(err)
		}
	}
	return s, NewSession(s, h)
}

func TestSessionStateMachine(t *testing.T) {
	_, sess := newSessionFixture(t)

	if _, ok := sess.Current(); ok {
		t.Fatal("initial state must be logged out")
	}
	if _, err := sess.require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("require err=%v", err)
	}

	if err := sess.Login(100001, "pw100001"); err != nil {
		t.Fatal(err)
	}
	if n, ok := sess.Current(); !ok || n != 100001 {
		t.Fatalf("current=%d,%v", n, ok)
	}

	// 第二次登入直接取代前一個 session
	if err := sess.Login(100002, "pw100002"); err != nil {
		t.Fatal(err)
	}
	if n, _ := sess.Current(); n != 100002 {
		t.Fatalf("current=%d want 100002", n)
	}

	sess.Logout()
	if _, ok := sess.Current(); ok {
		t.Fatal("logout must clear the session")
	}
	sess.Logout()
}

func TestSessionLoginFailuresKeepState(t *testing.T) {
	_, sess := newSessionFixture(t)
	if err := sess.Login(100001, "pw100001"); err != nil {
		t.Fatal(err)
	}

	if err := sess.Login(100002, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if err := sess.Login(999999, "pw100001"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if n, ok := sess.Current(); !ok || n != 100001 {
		t.Fatalf("failed logins changed the session: %d,%v", n, ok)
	}
}
