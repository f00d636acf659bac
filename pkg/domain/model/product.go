package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          int64           `db:"Id"`
	CustomerID  int64           `db:"CustomerId"`
	Name        string          `db:"Name"`
	Price       decimal.Decimal `db:"Price"`
	Description string          `db:"Description"`
	Quantity    int             `db:"Quantity"`
}

type ProductRepository interface {
	Create(product *Product) error
	Find(id int64) (*Product, error)
	FindAll() ([]Product, error)
	FindByCustomer(customerID int64) ([]Product, error)
	Update(product *Product) error
	Delete(id int64) error
}
