// internal/console/console.go
//
// Package console 是互動式前端：顯示選單、讀取輸入、解析並在格式錯誤時重新詢問，
// 再呼叫 bank 層執行操作並顯示結果。
// 每個選項只負責：
//  1. 讀取並解析輸入
//  2. 呼叫 bank.Bank
//  3. 透過 render.go 統一輸出成功或錯誤訊息
//
// 商業規則全部在 bank 層，本層不直接修改任何帳戶狀態。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"onlinebanking/internal/bank"
)

// errExit 由「離開」選項回傳，結束互動迴圈。
var errExit = errors.New("exit")

type Console struct {
	bank   *bank.Bank
	in     *bufio.Reader
	out    io.Writer
	secret func(prompt string) (string, error)
	styles styles
}

// New 建立前端。in 若為終端機，密碼輸入不回顯。
func New(b *bank.Bank, in io.Reader, out io.Writer) *Console {
	c := &Console{
		bank:   b,
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
	c.secret = c.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		c.secret = func(prompt string) (string, error) {
			fmt.Fprint(c.out, prompt)
			pw, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(string(pw)), nil
		}
	}
	return c
}

// Run 執行互動迴圈，直到使用者選擇離開、輸入結束 (EOF) 或 ctx 取消。
func (c *Console) Run(ctx context.Context) error {
	c.banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		menu := c.currentMenu()
		c.showMenu(menu)
		choice, err := c.readLine(c.styles.prompt.Render("What do you want to do? (Enter number): "))
		if err != nil {
			return ignoreEOF(err)
		}
		cmd, ok := menu.lookup(choice)
		if !ok {
			c.fail("Command not recognized. Try again.")
			continue
		}
		if err := cmd.run(c); err != nil {
			if errors.Is(err, errExit) {
				c.info("System shutting down. Goodbye!")
				return nil
			}
			return ignoreEOF(err)
		}
	}
}

// readLine 顯示提示並讀取一行，去除前後空白。
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
