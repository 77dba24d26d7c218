package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/bankdesk/pkg/domain"
)

// Client represents a bank customer.
//
// Invariants:
//   - ID, full name, phone and email are never blank and are stored trimmed.
//   - ID never changes once the client is created.
//   - BirthDate carries no time-of-day component.
type Client struct {
	id        string
	fullName  string
	phone     string
	email     string
	birthDate time.Time
}

// New validates the identity fields and returns a new Client.
func New(id, fullName, phone, email string, birthDate time.Time) (*Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: client id is required", domain.ErrInvalidArgument)
	}
	c := &Client{id: id}
	if err := c.Modify(fullName, phone, email, birthDate); err != nil {
		return nil, err
	}
	return c, nil
}

// Modify replaces the mutable fields. Nothing is changed if any field is invalid.
func (c *Client) Modify(fullName, phone, email string, birthDate time.Time) error {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	switch {
	case fullName == "":
		return fmt.Errorf("%w: full name is required", domain.ErrInvalidArgument)
	case phone == "":
		return fmt.Errorf("%w: phone is required", domain.ErrInvalidArgument)
	case email == "":
		return fmt.Errorf("%w: email is required", domain.ErrInvalidArgument)
	}
	c.fullName = fullName
	c.phone = phone
	c.email = email
	c.birthDate = dateOnly(birthDate)
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() string { return c.id }

// FullName returns the client's full name.
func (c *Client) FullName() string { return c.fullName }

// Phone returns the contact phone number.
func (c *Client) Phone() string { return c.phone }

// Email returns the contact email address.
func (c *Client) Email() string { return c.email }

// BirthDate returns the birth date at midnight.
func (c *Client) BirthDate() time.Time { return c.birthDate }

// Age returns the client's age in whole years as of today.
func (c *Client) Age() int {
	return c.AgeAt(time.Now())
}

// AgeAt returns the age in whole years on the given day. A year only counts
// once its anniversary has been reached.
func (c *Client) AgeAt(today time.Time) int {
	age := today.Year() - c.birthDate.Year()
	if today.Month() < c.birthDate.Month() ||
		(today.Month() == c.birthDate.Month() && today.Day() < c.birthDate.Day()) {
		age--
	}
	return age
}

func (c *Client) String() string {
	return fmt.Sprintf("%s (ID: %s) - Tel: %s - Email: %s - Age: %d",
		c.fullName, c.id, c.phone, c.email, c.Age())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
