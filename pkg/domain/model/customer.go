package model

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")

type Customer struct {
	ID            int64  `db:"Id"`
	Name          string `db:"Name"`
	StreetAddress string `db:"StreetAddress"`
	City          string `db:"City"`
	State         string `db:"State"`
	PostalCode    string `db:"PostalCode"`
	PhoneNumber   string `db:"PhoneNumber"`
}

type CustomerRepository interface {
	Create(customer *Customer) error
	Find(id int64) (*Customer, error)
	FindAll() ([]Customer, error)
}
