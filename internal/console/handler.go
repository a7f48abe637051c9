// internal/console/handler.go
package console

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"onlinebanking/internal/bank"
	"onlinebanking/internal/storage"
)

// register 依序詢問帳號、姓名、電話、密碼與開戶金額。
// 帳號與開戶金額格式錯誤時重新詢問；其餘錯誤交由 bank 層判斷。
func (c *Console) register() error {
	c.section("NEW ACCOUNT SETUP")
	num, err := c.askAccountNumber("1. Enter a unique 6-digit Account Number (e.g., 100001): ")
	if err != nil {
		return err
	}
	name, err := c.readLine("2. Enter Full Name (no spaces, e.g., JohnDoe): ")
	if err != nil {
		return err
	}
	phone, err := c.readLine("3. Enter Phone Number (no spaces, e.g., 555-1234): ")
	if err != nil {
		return err
	}
	pw, err := c.secret(fmt.Sprintf("4. Create Password (max %d chars): ", bank.MaxPasswordLen))
	if err != nil {
		return err
	}
	deposit, err := c.askInitialDeposit()
	if err != nil {
		return err
	}

	n, err := c.bank.Register(name, num, pw, phone, deposit)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	c.ok(fmt.Sprintf("Welcome, %s! Your account is ready.", name))
	c.info(fmt.Sprintf("Account: %d | Phone: %s", n, phone))
	return nil
}

func (c *Console) login() error {
	c.section("LOGIN AUTHENTICATION")
	line, err := c.readLine("Account Number: ")
	if err != nil {
		return err
	}
	num, err := bank.ParseAccountNumber(line)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	pw, err := c.secret("Password: ")
	if err != nil {
		return err
	}
	if err := c.bank.Login(num, pw); err != nil {
		c.writeErr(err)
		return nil
	}
	v, _ := c.bank.Details()
	c.ok(fmt.Sprintf("Login successful. Hello, %s.", v.FullName))
	return nil
}

func (c *Console) logout() error {
	c.bank.Logout()
	c.ok("You have successfully logged out.")
	return nil
}

func (c *Console) deposit() error {
	c.section("Cash Deposit")
	c.showBalance("Current Balance")
	amt, ok, err := c.askAmount("Enter deposit amount: ")
	if err != nil || !ok {
		return err
	}
	bal, err := c.bank.Deposit(amt)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	c.ok(fmt.Sprintf("%s added.", money(amt)))
	c.info("NEW Balance: " + money(bal))
	return nil
}

func (c *Console) withdraw() error {
	c.section("Cash Withdrawal")
	c.showBalance("Current Balance")
	amt, ok, err := c.askAmount("Enter withdrawal amount: ")
	if err != nil || !ok {
		return err
	}
	bal, err := c.bank.Withdraw(amt)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	c.ok(fmt.Sprintf("%s dispensed.", money(amt)))
	c.info("NEW Balance: " + money(bal))
	return nil
}

func (c *Console) transfer() error {
	c.section("Account to Account Transfer")
	c.showBalance("Your Balance")
	line, err := c.readLine("Enter Recipient Account Number: ")
	if err != nil {
		return err
	}
	to, err := bank.ParseAccountNumber(line)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	amt, ok, err := c.askAmount("Enter transfer amount: ")
	if err != nil || !ok {
		return err
	}
	bal, err := c.bank.Transfer(to, amt)
	if err != nil {
		c.writeErr(err)
		return nil
	}
	c.ok(fmt.Sprintf("Transferred %s to account %d.", money(amt), to))
	c.info("Your New Balance: " + money(bal))
	return nil
}

func (c *Console) changePassword() error {
	c.section("Password Reset")
	old, err := c.secret("1. Enter Current Password for verification: ")
	if err != nil {
		return err
	}
	pw1, err := c.secret("2. Enter New Password: ")
	if err != nil {
		return err
	}
	pw2, err := c.secret("3. Confirm New Password: ")
	if err != nil {
		return err
	}
	if err := c.bank.ChangePassword(old, pw1, pw2); err != nil {
		if errors.Is(err, bank.ErrInvalidCredentials) {
			c.fail("Current password incorrect. Aborting change.")
			return nil
		}
		c.writeErr(err)
		return nil
	}
	n, _ := c.bank.Current()
	c.ok(fmt.Sprintf("Password updated for account %d.", n))
	return nil
}

func (c *Console) details() error {
	v, ok := c.bank.Details()
	if !ok {
		c.writeErr(bank.ErrNotAuthenticated)
		return nil
	}
	c.renderDetails(v)
	return nil
}

// askAccountNumber 重複詢問直到取得格式正確的帳號。
func (c *Console) askAccountNumber(prompt string) (bank.AccountNumber, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := bank.ParseAccountNumber(line)
		if err == nil {
			return n, nil
		}
		c.fail("Account number must be a 6-digit number.")
	}
}

// askInitialDeposit 重複詢問直到開戶金額 >= 10.00。
func (c *Console) askInitialDeposit() (decimal.Decimal, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("5. Enter Initial Deposit Amount (must be >= %s): ", money(bank.MinInitialDeposit)))
		if err != nil {
			return decimal.Zero, err
		}
		d, err := bank.ParseAmount(line)
		if err == nil {
			err = bank.ValidateInitialDeposit(d)
		}
		if err == nil {
			return d, nil
		}
		c.fail("Invalid deposit amount.")
	}
}

// askAmount 讀取一次金額；格式錯誤時顯示訊息並回到選單（ok 為 false）。
func (c *Console) askAmount(prompt string) (decimal.Decimal, bool, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}
	d, err := bank.ParseAmount(line)
	if err == nil {
		err = bank.ValidateAmount(d)
	}
	if err != nil {
		c.writeErr(err)
		return decimal.Zero, false, nil
	}
	return d, true, nil
}

func (c *Console) showBalance(label string) {
	if v, ok := c.bank.Details(); ok {
		c.info(label + ": " + money(v.Balance))
	}
}

// errMessage 將領域錯誤轉成給使用者看的訊息。
func errMessage(err error) string {
	var ve *bank.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Invalid " + ve.Field + ": " + ve.Err.Error() + "."
	case errors.Is(err, bank.ErrAccountNotFound), errors.Is(err, bank.ErrInvalidCredentials):
		return "Login failed: Account or password incorrect."
	case errors.Is(err, bank.ErrDuplicateAccount):
		return "That account number already exists."
	case errors.Is(err, bank.ErrCapacityExceeded):
		return "Sorry, the bank is full. We reached the account limit."
	case errors.Is(err, bank.ErrRecipientNotFound):
		return "Recipient account not found in the system."
	case errors.Is(err, bank.ErrSelfTransfer):
		return "Please use Deposit/Withdrawal for self-account operations."
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, bank.ErrPasswordMismatch):
		return "New passwords did not match. No changes made."
	case errors.Is(err, bank.ErrNotAuthenticated):
		return "Please log in first."
	case errors.Is(err, storage.ErrPersistence):
		return "Could not save your data, nothing was changed: " + err.Error()
	default:
		return err.Error()
	}
}
