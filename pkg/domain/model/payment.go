package model

import "errors"

var ErrPaymentTypeNotFound = errors.New("payment type not found")

type PaymentType struct {
	ID            int64  `db:"Id"`
	CustomerID    int64  `db:"CustomerId"`
	Type          string `db:"Type"`
	AccountNumber int64  `db:"AcctNumber"`
}

type PaymentTypeRepository interface {
	Create(paymentType *PaymentType) error
	Find(id int64) (*PaymentType, error)
	FindByCustomer(customerID int64) ([]PaymentType, error)
}
