package console

import (
	"fmt"

	"github.com/amirasaad/bankdesk/pkg/domain"
	"github.com/amirasaad/bankdesk/pkg/domain/client"
	"github.com/amirasaad/bankdesk/pkg/dto"
)

func (c *Console) clientsMenu() error {
	return c.submenu("CLIENTS",
		[]string{"Add", "Modify", "Remove (no accounts)", "Find by ID", "Find by name"},
		map[string]func() error{
			"1": c.addClient,
			"2": c.modifyClient,
			"3": c.removeClient,
			"4": c.findClientByID,
			"5": c.findClientsByName,
		})
}

func (c *Console) addClient() error {
	fmt.Fprintln(c.out, "New client")
	var (
		form dto.ClientCreate
		err  error
	)
	if form.ID, err = c.readRequired("ID"); err != nil {
		return err
	}
	if form.FullName, err = c.readRequired("Full name"); err != nil {
		return err
	}
	if form.Phone, err = c.readRequired("Phone"); err != nil {
		return err
	}
	if form.Email, err = c.readRequired("Email"); err != nil {
		return err
	}
	if form.BirthDate, err = c.readDate("Birth date (dd/mm/yyyy)"); err != nil {
		return err
	}
	if err := dto.Validate(form); err != nil {
		return err
	}

	cl, err := client.New(form.ID, form.FullName, form.Phone, form.Email, form.BirthDate)
	if err != nil {
		return err
	}
	if err := c.bank.AddClient(cl); err != nil {
		return err
	}
	c.success("Client added.")
	return nil
}

func (c *Console) modifyClient() error {
	id, err := c.readRequired("ID of the client to modify")
	if err != nil {
		return err
	}
	cl, ok := c.bank.FindClientByID(id)
	if !ok {
		return fmt.Errorf("%w: client %q", domain.ErrNotFound, id)
	}
	fmt.Fprintf(c.out, "Editing: %s\n", cl)

	var form dto.ClientUpdate
	if form.FullName, err = c.readRequired("New full name"); err != nil {
		return err
	}
	if form.Phone, err = c.readRequired("New phone"); err != nil {
		return err
	}
	if form.Email, err = c.readRequired("New email"); err != nil {
		return err
	}
	if form.BirthDate, err = c.readDate("New birth date (dd/mm/yyyy)"); err != nil {
		return err
	}
	if err := dto.Validate(form); err != nil {
		return err
	}

	if err := c.bank.ModifyClient(cl.ID(), form.FullName, form.Phone, form.Email, form.BirthDate); err != nil {
		return err
	}
	c.success("Client updated.")
	return nil
}

func (c *Console) removeClient() error {
	id, err := c.readRequired("ID of the client to remove")
	if err != nil {
		return err
	}
	if err := c.bank.RemoveClient(id); err != nil {
		return err
	}
	c.success("Client removed.")
	return nil
}

func (c *Console) findClientByID() error {
	id, err := c.readRequired("ID to find")
	if err != nil {
		return err
	}
	cl, ok := c.bank.FindClientByID(id)
	if !ok {
		fmt.Fprintln(c.out, "Not found")
		return nil
	}
	fmt.Fprintln(c.out, cl)
	return nil
}

func (c *Console) findClientsByName() error {
	text, err := c.readOptional("Name or part of it (empty lists all)")
	if err != nil {
		return err
	}
	found := c.bank.FindClientsByName(text)
	if len(found) == 0 {
		fmt.Fprintln(c.out, "No results")
	}
	for _, cl := range found {
		fmt.Fprintln(c.out, cl)
	}
	return nil
}

func (c *Console) listClients() error {
	c.title.Fprintln(c.out, "=== CLIENT LISTING ===")
	for _, cl := range c.bank.Clients() {
		fmt.Fprintln(c.out, cl)
		accounts := c.bank.ListAccountsForClient(cl.ID())
		if len(accounts) == 0 {
			fmt.Fprintln(c.out, "    (no accounts)")
			continue
		}
		for _, acc := range accounts {
			fmt.Fprintln(c.out, "    - "+acc.String())
		}
	}
	return nil
}
