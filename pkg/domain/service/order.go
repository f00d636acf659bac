package service

import (
	"errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

var (
	ErrOpenOrderExists    = errors.New("customer already has an open order")
	ErrOrderAlreadyClosed = errors.New("order has already been closed")
)

// OrderService owns the order/product aggregation: the shopping cart is an
// open order plus join rows in the OrderProduct table.
type OrderService interface {
	Create(customerID int64) (*model.Order, error)
	OpenOrder(customerID int64) (*model.Order, error)
	AttachProduct(orderID, productID int64) error
	DetachProduct(orderID, productID int64) error
	OrderWithProducts(orderID int64) (*model.Order, error)
	ProductInOrder(orderID, productID int64) (*model.Product, error)
	Close(orderID, paymentTypeID int64) error
	ByID(orderID int64) (*model.Order, error)
}

func NewOrderService(repo model.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

type orderService struct {
	repo model.OrderRepository
}

func (s *orderService) Create(customerID int64) (*model.Order, error) {
	_, err := s.repo.FindOpenByCustomer(customerID)
	switch {
	case err == nil:
		return nil, ErrOpenOrderExists
	case !errors.Is(err, model.ErrOrderNotFound):
		return nil, err
	}

	order := &model.Order{CustomerID: customerID}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) OpenOrder(customerID int64) (*model.Order, error) {
	return s.repo.FindOpenByCustomer(customerID)
}

// AttachProduct records the product on the order. Duplicate attachments are
// permitted: a second row for the same product means a second unit.
func (s *orderService) AttachProduct(orderID, productID int64) error {
	return s.repo.AttachProduct(orderID, productID)
}

// DetachProduct removes the product's join rows. Detaching a product that is
// not on the order is not an error.
func (s *orderService) DetachProduct(orderID, productID int64) error {
	return s.repo.DetachProduct(orderID, productID)
}

func (s *orderService) OrderWithProducts(orderID int64) (*model.Order, error) {
	return s.repo.FindWithProducts(orderID)
}

func (s *orderService) ProductInOrder(orderID, productID int64) (*model.Product, error) {
	return s.repo.FindProductInOrder(orderID, productID)
}

// Close stamps the payment type and a store-generated completion date on the
// order. Closing is terminal: a closed order is never re-stamped.
func (s *orderService) Close(orderID, paymentTypeID int64) error {
	order, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if order.IsClosed() {
		return ErrOrderAlreadyClosed
	}
	return s.repo.Close(orderID, paymentTypeID)
}

func (s *orderService) ByID(orderID int64) (*model.Order, error) {
	return s.repo.Find(orderID)
}
