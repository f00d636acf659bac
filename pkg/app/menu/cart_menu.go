package menu

import (
	"errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

// addToCart puts a product on the active customer's open order, creating
// the order first when the customer has none.
func (m *Menu) addToCart() {
	products, err := m.products.All()
	if err != nil {
		m.fail("Could not list products.", err)
		return
	}

	// only offer products with stock left
	var available []model.Product
	for _, p := range products {
		inStock, err := m.inventory.HasAvailableQuantity(&p)
		if err != nil {
			m.fail("Could not check product availability.", err)
			return
		}
		if inStock {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		m.console.Print("Nothing is in stock right now.")
		m.console.Pause()
		return
	}

	m.console.Print("Add product to shopping cart:")
	for i, p := range available {
		quantity, err := m.inventory.AvailableQuantity(&p)
		if err != nil {
			m.fail("Could not check product availability.", err)
			return
		}
		m.console.Print("%d. %s ($%s, %d available)", i+1, p.Name, p.Price.StringFixed(2), quantity)
	}
	exit := len(available) + 1
	m.console.Print("%d. Exit", exit)

	choice := m.console.PromptInt("> ", 1, exit)
	if choice == exit {
		return
	}
	product := available[choice-1]

	order, err := m.orders.OpenOrder(m.active.ID)
	if errors.Is(err, model.ErrOrderNotFound) {
		order, err = m.orders.Create(m.active.ID)
	}
	if err != nil {
		m.fail("Could not open your shopping cart.", err)
		return
	}

	if err := m.orders.AttachProduct(order.ID, product.ID); err != nil {
		m.fail("Could not add the product to your cart.", err)
		return
	}
	m.console.Print("%s added to your cart.", product.Name)
}
