package console

import (
	"fmt"
	"strings"

	"github.com/amirasaad/bankdesk/pkg/domain"
	"github.com/amirasaad/bankdesk/pkg/domain/account"
	"github.com/amirasaad/bankdesk/pkg/dto"
)

func (c *Console) accountsMenu() error {
	return c.submenu("ACCOUNTS",
		[]string{"Add account", "Change owner", "Remove account (zero balance)", "Accounts by owner ID"},
		map[string]func() error{
			"1": c.addAccount,
			"2": c.changeOwner,
			"3": c.removeAccount,
			"4": c.listAccountsForClient,
		})
}

func (c *Console) addAccount() error {
	fmt.Fprintln(c.out, "Account types: 1) Savings  2) Checking")
	kind, err := c.prompt("Choose type (1/2)")
	if err != nil {
		return err
	}
	var form dto.AccountCreate
	if form.Code, err = c.readRequired("Unique account code"); err != nil {
		return err
	}
	if form.OwnerID, err = c.readRequired("Owner ID (must exist)"); err != nil {
		return err
	}

	switch strings.TrimSpace(kind) {
	case "1":
		form.Kind = string(account.KindSavings)
		form.Limit, err = c.readPositive("Withdrawal cap")
	case "2":
		form.Kind = string(account.KindChecking)
		form.Limit, err = c.readNonNegative("Overdraft limit (allowed negative balance)")
	default:
		return fmt.Errorf("%w: unknown account type %q", domain.ErrInvalidArgument, kind)
	}
	if err != nil {
		return err
	}
	if err := dto.Validate(form); err != nil {
		return err
	}

	builder := account.New().WithCode(form.Code).WithOwnerID(form.OwnerID)
	if form.Kind == string(account.KindSavings) {
		builder = builder.AsSavings(form.Limit)
	} else {
		builder = builder.AsChecking(form.Limit)
	}
	acc, err := builder.Build()
	if err != nil {
		return err
	}
	if err := c.bank.AddAccount(acc); err != nil {
		return err
	}
	c.success("Account created.")
	return nil
}

func (c *Console) changeOwner() error {
	var (
		form dto.AccountOwnerChange
		err  error
	)
	if form.Code, err = c.readRequired("Account code"); err != nil {
		return err
	}
	if form.NewOwnerID, err = c.readRequired("New owner ID (must exist)"); err != nil {
		return err
	}
	if err := dto.Validate(form); err != nil {
		return err
	}
	if err := c.bank.ChangeAccountOwner(form.Code, form.NewOwnerID); err != nil {
		return err
	}
	c.success("Owner updated.")
	return nil
}

func (c *Console) removeAccount() error {
	code, err := c.readRequired("Code of the account to remove")
	if err != nil {
		return err
	}
	if err := c.bank.RemoveAccount(code); err != nil {
		return err
	}
	c.success("Account removed.")
	return nil
}

func (c *Console) listAccountsForClient() error {
	id, err := c.readRequired("Owner ID")
	if err != nil {
		return err
	}
	accounts := c.bank.ListAccountsForClient(id)
	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No accounts")
	}
	for _, acc := range accounts {
		fmt.Fprintln(c.out, acc)
	}
	return nil
}
