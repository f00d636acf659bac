// Package menu renders the numbered console menus and translates operator
// input into service calls. No SQL and no business rules live here.
package menu

import (
	log "github.com/sirupsen/logrus"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/app/console"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
)

type Menu struct {
	console *console.Console

	customers   service.CustomerService
	products    service.ProductService
	payments    service.PaymentTypeService
	orders      service.OrderService
	inventory   service.InventoryService
	reports     service.ReportService
	paymentRepo model.PaymentTypeRepository

	active *model.Customer
}

type Services struct {
	Customers   service.CustomerService
	Products    service.ProductService
	Payments    service.PaymentTypeService
	Orders      service.OrderService
	Inventory   service.InventoryService
	Reports     service.ReportService
	PaymentRepo model.PaymentTypeRepository
}

func New(c *console.Console, s Services) *Menu {
	return &Menu{
		console:     c,
		customers:   s.Customers,
		products:    s.Products,
		payments:    s.Payments,
		orders:      s.Orders,
		inventory:   s.Inventory,
		reports:     s.Reports,
		paymentRepo: s.PaymentRepo,
	}
}

// Run loops the main menu until the operator leaves. Options 3-8 need an
// active customer; without one they are rejected and the menu re-displays.
func (m *Menu) Run() error {
	for {
		m.printHeader()
		choice := m.console.PromptInt("> ", 1, 9)
		if m.console.Closed() {
			return nil
		}

		if m.active == nil {
			switch choice {
			case 1, 2, 9:
			default:
				m.console.Print("Choose an active customer first.")
				continue
			}
		}

		switch choice {
		case 1:
			m.createCustomer()
		case 2:
			m.chooseActiveCustomer()
		case 3:
			m.createPaymentType()
		case 4:
			m.addProduct()
		case 5:
			m.maintainProducts()
		case 6:
			m.addToCart()
		case 7:
			m.completeOrder()
		case 8:
			m.showReports()
		case 9:
			return nil
		}
	}
}

func (m *Menu) printHeader() {
	m.console.Print("*********************************************************")
	m.console.Print("**  Welcome to Bangazon! Command Line Ordering System  **")
	m.console.Print("*********************************************************")
	if m.active != nil {
		m.console.Print("  Active Customer: %s", m.active.Name)
		m.console.Print("*********************************************************")
	}
	m.console.Print("1. Create a customer account")
	m.console.Print("2. Choose active customer")
	if m.active != nil {
		m.console.Print("3. Create a payment option")
		m.console.Print("4. Add a product to active customer")
		m.console.Print("5. Update or delete active customer's products")
		m.console.Print("6. Add product to shopping cart")
		m.console.Print("7. Complete an order")
		m.console.Print("8. View reports")
	}
	m.console.Print("9. Leave Bangazon!")
}

// fail logs the underlying error for the operator log and shows a short
// message on screen; the menu loop carries on.
func (m *Menu) fail(msg string, err error) {
	log.WithError(err).Error(msg)
	m.console.Print("*** %s ***", msg)
	m.console.Pause()
}
