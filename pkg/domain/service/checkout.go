package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

var (
	ErrEmptyCart          = errors.New("shopping cart contains no products")
	ErrNoPaymentTypes     = errors.New("customer has no payment types")
	ErrInvalidState       = errors.New("operation not valid in current checkout state")
	ErrInvalidPaymentPick = errors.New("payment selection out of range")
)

type CheckoutState int

const (
	StateReviewing CheckoutState = iota
	StateConfirmingPurchase
	StateSelectingPayment
	StateClosed
	StateCancelled
)

// Checkout walks one customer through paying for their open order:
// Reviewing -> ConfirmingPurchase -> SelectingPayment -> Closed/Cancelled.
// It holds no console I/O so the whole flow is testable headless.
type Checkout struct {
	orders    OrderService
	inventory InventoryService
	payments  model.PaymentTypeRepository

	state   CheckoutState
	order   *model.Order
	total   decimal.Decimal
	options []model.PaymentType
}

func NewCheckout(orders OrderService, inventory InventoryService, payments model.PaymentTypeRepository) *Checkout {
	return &Checkout{orders: orders, inventory: inventory, payments: payments}
}

func (c *Checkout) State() CheckoutState { return c.state }

func (c *Checkout) Order() *model.Order { return c.order }

func (c *Checkout) Total() decimal.Decimal { return c.total }

func (c *Checkout) PaymentOptions() []model.PaymentType { return c.options }

// Begin loads the customer's open order, drops products that have sold out
// since they were carted, and totals what remains. Returns the dropped
// products so the caller can tell the customer.
func (c *Checkout) Begin(customerID int64) ([]model.Product, error) {
	if c.state != StateReviewing {
		return nil, ErrInvalidState
	}

	open, err := c.orders.OpenOrder(customerID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}

	order, err := c.orders.OrderWithProducts(open.ID)
	if err != nil {
		return nil, err
	}

	var dropped []model.Product
	kept := order.Products[:0]
	for _, p := range order.Products {
		inStock, err := c.inventory.HasAvailableQuantity(&p)
		if err != nil {
			return nil, err
		}
		if !inStock {
			if err := c.orders.DetachProduct(order.ID, p.ID); err != nil {
				return nil, err
			}
			dropped = append(dropped, p)
			continue
		}
		kept = append(kept, p)
	}
	order.Products = kept

	if len(order.Products) == 0 {
		return dropped, ErrEmptyCart
	}

	total := decimal.Zero
	for _, p := range order.Products {
		total = total.Add(p.Price)
	}

	c.order = order
	c.total = total
	c.state = StateConfirmingPurchase
	return dropped, nil
}

// Confirm answers the "ready to purchase?" prompt. Declining cancels the
// checkout; the cart itself is left untouched.
func (c *Checkout) Confirm(ready bool) ([]model.PaymentType, error) {
	if c.state != StateConfirmingPurchase {
		return nil, ErrInvalidState
	}
	if !ready {
		c.state = StateCancelled
		return nil, nil
	}

	options, err := c.payments.FindByCustomer(c.order.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, ErrNoPaymentTypes
	}

	c.options = options
	c.state = StateSelectingPayment
	return options, nil
}

// SelectPayment closes the order with the chosen payment type. choice is the
// 1-based menu number. A failed close leaves the checkout in
// SelectingPayment so the customer can pick again.
func (c *Checkout) SelectPayment(choice int) error {
	if c.state != StateSelectingPayment {
		return ErrInvalidState
	}
	if choice < 1 || choice > len(c.options) {
		return ErrInvalidPaymentPick
	}

	if err := c.orders.Close(c.order.ID, c.options[choice-1].ID); err != nil {
		return err
	}

	c.state = StateClosed
	return nil
}

func (c *Checkout) Cancel() {
	if c.state == StateClosed || c.state == StateCancelled {
		return
	}
	c.state = StateCancelled
}
