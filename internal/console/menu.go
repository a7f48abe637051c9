// internal/console/menu.go
//
// 選單與選項的對應表。未登入與已登入各有一組選項，
// 依 bank 目前的登入狀態決定顯示哪一組。
package console

import "fmt"

type command struct {
	key   string
	label string
	run   func(*Console) error
}

type menu struct {
	title    string
	commands []command
}

func (m menu) lookup(key string) (command, bool) {
	for _, cmd := range m.commands {
		if cmd.key == key {
			return cmd, true
		}
	}
	return command{}, false
}

var loggedOutMenu = menu{
	title: "ONLINE BANKING SYSTEM",
	commands: []command{
		{"1", "Register New Account", (*Console).register},
		{"2", "Login to Account", (*Console).login},
		{"0", "Exit Application", func(*Console) error { return errExit }},
	},
}

var loggedInCommands = []command{
	{"1", "Deposit Cash", (*Console).deposit},
	{"2", "Withdraw Cash", (*Console).withdraw},
	{"3", "Transfer Money to another Account", (*Console).transfer},
	{"4", "Change My Password", (*Console).changePassword},
	{"5", "Show Account Details", (*Console).details},
	{"0", "Logout", (*Console).logout},
}

func (c *Console) currentMenu() menu {
	v, ok := c.bank.Details()
	if !ok {
		return loggedOutMenu
	}
	return menu{
		title:    fmt.Sprintf("Welcome back, %s! | Account: %d | Balance: %s", v.FullName, v.Number, money(v.Balance)),
		commands: loggedInCommands,
	}
}
