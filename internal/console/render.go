// internal/console/render.go
//
// 統一輸出格式：成功、錯誤、一般訊息與帳戶明細都經由這裡，
// 樣式集中在 styles，handler 不直接處理顏色或版面。
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"onlinebanking/internal/bank"
)

const currency = "ZMW"

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	prompt  lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	box     lipgloss.Style
	label   lipgloss.Style
}

// newStyles 綁定到輸出端的 renderer；輸出不是終端機時自動不加顏色。
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		section: r.NewStyle().Bold(true),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("14")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
		info:    r.NewStyle(),
		box:     r.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		label:   r.NewStyle().Width(17),
	}
}

func money(d decimal.Decimal) string {
	return currency + " " + d.StringFixed(2)
}

func (c *Console) banner() {
	fmt.Fprintln(c.out, c.styles.title.Render("ONLINE BANKING SYSTEM"))
}

func (c *Console) showMenu(m menu) {
	rule := strings.Repeat("=", 34)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", rule, c.styles.title.Render(m.title), rule)
	for _, cmd := range m.commands {
		fmt.Fprintf(c.out, "%s. %s\n", cmd.key, cmd.label)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 34))
}

func (c *Console) section(title string) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.section.Render("*** "+title+" ***"))
}

func (c *Console) ok(msg string) {
	fmt.Fprintln(c.out, c.styles.ok.Render("[SUCCESS] "+msg))
}

func (c *Console) fail(msg string) {
	fmt.Fprintln(c.out, c.styles.err.Render("[ERROR] "+msg))
}

func (c *Console) info(msg string) {
	fmt.Fprintln(c.out, c.styles.info.Render(msg))
}

// writeErr 統一輸出錯誤訊息。
func (c *Console) writeErr(err error) {
	c.fail(errMessage(err))
}

func (c *Console) renderDetails(v bank.AccountView) {
	rows := []struct{ k, v string }{
		{"Holder:", v.FullName},
		{"Account Number:", v.Number.String()},
		{"Phone Number:", v.Phone},
		{"Current Balance:", money(v.Balance)},
	}
	var b strings.Builder
	b.WriteString(c.styles.section.Render("Your Account Overview"))
	for _, r := range rows {
		b.WriteString("\n" + c.styles.label.Render(r.k) + r.v)
	}
	fmt.Fprintln(c.out, c.styles.box.Render(b.String()))
}
