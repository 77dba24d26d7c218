package dto

import "time"

// ClientCreate represents the data needed to register a client.
type ClientCreate struct {
	ID        string    `label:"ID" validate:"required,max=20"`
	FullName  string    `label:"full name" validate:"required,max=100"`
	Phone     string    `label:"phone" validate:"required,max=30"`
	Email     string    `label:"email" validate:"required,email"`
	BirthDate time.Time `label:"birth date" validate:"required,lte"`
}

// ClientUpdate represents the replaceable fields of a registered client.
type ClientUpdate struct {
	FullName  string    `label:"full name" validate:"required,max=100"`
	Phone     string    `label:"phone" validate:"required,max=30"`
	Email     string    `label:"email" validate:"required,email"`
	BirthDate time.Time `label:"birth date" validate:"required,lte"`
}
