package menu

import (
	"errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
)

// completeOrder drives the checkout state machine from the console.
func (m *Menu) completeOrder() {
	checkout := service.NewCheckout(m.orders, m.inventory, m.paymentRepo)

	dropped, err := checkout.Begin(m.active.ID)
	for _, p := range dropped {
		m.console.Print("%s is sold out and was removed from your cart.", p.Name)
	}
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			m.console.Print("*** NO PRODUCTS EXIST IN YOUR SHOPPING CART.  ***")
			m.console.Print("*** ADD PRODUCTS TO YOUR SHOPPING CART FIRST. ***")
			m.console.Pause()
			return
		}
		m.fail("Could not load your shopping cart.", err)
		return
	}

	for _, p := range checkout.Order().Products {
		m.console.Print("- %s $%s", p.Name, p.Price.StringFixed(2))
	}
	ready := m.console.PromptYesNo(
		"Your order total is $" + checkout.Total().StringFixed(2) + ". Ready to purchase? (Y/N) > ")

	options, err := checkout.Confirm(ready)
	if err != nil {
		if errors.Is(err, service.ErrNoPaymentTypes) {
			m.console.Print("You have no payment options - create one first.")
			m.console.Pause()
			return
		}
		m.fail("Could not load your payment options.", err)
		return
	}
	if checkout.State() == service.StateCancelled {
		m.console.Print("*** PURCHASE CANCELLED. ***")
		m.console.Pause()
		return
	}

	m.console.Print("Choose a payment option:")
	for i, pt := range options {
		m.console.Print("%d. %s", i+1, pt.Type)
	}
	for {
		choice := m.console.PromptInt("> ", 1, len(options))
		if err := checkout.SelectPayment(choice); err != nil {
			m.fail("Could not complete the purchase.", err)
			if !m.console.PromptYesNo("Try another payment option? (Y/N) > ") {
				checkout.Cancel()
				return
			}
			continue
		}
		break
	}

	m.console.Print("Thank you for your purchase!")
	m.console.Pause()
}
