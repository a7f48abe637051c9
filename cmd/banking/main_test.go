// cmd/banking/main_test.go
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"onlinebanking/internal/config"
	"onlinebanking/internal/storage"
)

// execute 以全新的根命令執行 args，回傳 stdout。
func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestExportWritesJSON(t *testing.T) {
	data := filepath.Join(t.TempDir(), "bank_data.txt")
	content := "Alice 100001 secret1 45.00 5551234\nBob 100002 hunter2 50.00 5559876\n"
	if err := os.WriteFile(data, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "", "export", "--data-file", data)
	var snap storage.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v\n%s", err, out)
	}
	if len(snap.Accounts) != 2 || snap.Accounts[1].FullName != "Bob" {
		t.Fatalf("unexpected snapshot: %+v", snap.Accounts)
	}
}

func TestShellPersistsRegistration(t *testing.T) {
	data := filepath.Join(t.TempDir(), "bank_data.txt")
	input := strings.Join([]string{"1", "100001", "Alice", "5551234", "secret1", "50", "0"}, "\n") + "\n"
	out := execute(t, input, "--data-file", data, "--capacity", "5")
	if !strings.Contains(out, "Welcome, Alice!") {
		t.Fatalf("registration not confirmed:\n%s", out)
	}

	recs, err := storage.NewFlatFile(data).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].AccountNumber != 100001 || recs[0].Balance.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if recs[0].Password == "secret1" {
		t.Fatal("password should be hashed by default")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banking.yaml")
	out := execute(t, "", "config", "init", "--path", path)
	if !strings.Contains(out, path) {
		t.Fatalf("output=%q", out)
	}
	c, err := config.Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c != config.Defaults() {
		t.Fatalf("got %+v", c)
	}
}
