package console

import (
	"fmt"

	"github.com/amirasaad/bankdesk/pkg/domain"
)

func (c *Console) operationsMenu() error {
	return c.submenu("OPERATIONS",
		[]string{"Deposit", "Withdraw", "View account movements"},
		map[string]func() error{
			"1": c.deposit,
			"2": c.withdraw,
			"3": c.showMovements,
		})
}

func (c *Console) deposit() error {
	code, err := c.readRequired("Account code")
	if err != nil {
		return err
	}
	amount, err := c.readPositive("Amount to deposit")
	if err != nil {
		return err
	}
	if err := c.bank.Deposit(code, amount); err != nil {
		return err
	}
	c.success("Deposit done.")
	return nil
}

func (c *Console) withdraw() error {
	code, err := c.readRequired("Account code")
	if err != nil {
		return err
	}
	amount, err := c.readPositive("Amount to withdraw")
	if err != nil {
		return err
	}
	if err := c.bank.Withdraw(code, amount); err != nil {
		return err
	}
	c.success("Withdrawal done.")
	return nil
}

func (c *Console) showMovements() error {
	code, err := c.readRequired("Account code")
	if err != nil {
		return err
	}
	acc, ok := c.bank.FindAccountByCode(code)
	if !ok {
		return fmt.Errorf("%w: account %q", domain.ErrNotFound, code)
	}
	movements, err := c.bank.Movements(acc.Code())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, acc)
	if len(movements) == 0 {
		fmt.Fprintln(c.out, "(no movements)")
	}
	for _, m := range movements {
		fmt.Fprintln(c.out, "  - "+m.String())
	}
	return nil
}
