package model

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Order is the customer's shopping cart while PaymentTypeID and
// CompletedDate are both nil, and a finished purchase once both are set.
type Order struct {
	ID            int64      `db:"Id"`
	CustomerID    int64      `db:"CustomerId"`
	PaymentTypeID *int64     `db:"PaymentTypeId"`
	CompletedDate *time.Time `db:"CompletedDate"`
	Products      []Product  `db:"-"`
}

func (o *Order) IsClosed() bool {
	return o.CompletedDate != nil
}

// ProductSales ranks a product by units sold across completed orders.
type ProductSales struct {
	Product   Product
	UnitsSold int
}

type OrderRepository interface {
	Create(order *Order) error
	Find(id int64) (*Order, error)
	FindOpenByCustomer(customerID int64) (*Order, error)
	FindWithProducts(id int64) (*Order, error)
	FindProductInOrder(orderID, productID int64) (*Product, error)
	AttachProduct(orderID, productID int64) error
	DetachProduct(orderID, productID int64) error
	Close(orderID, paymentTypeID int64) error

	// CountCompletedSales is the number of join rows referencing the
	// product on orders that carry a completion date.
	CountCompletedSales(productID int64) (int, error)
	// CountReferences counts join rows for the product on any order,
	// open or closed.
	CountReferences(productID int64) (int, error)
	TopSelling(limit int) ([]ProductSales, error)
}
