package menu

import (
	"errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
)

func (m *Menu) addProduct() {
	m.console.Print("Add a product to sell")

	name := m.console.Prompt("Product name > ")
	price := m.console.PromptDecimal("Price > ")
	description := m.console.Prompt("Description > ")
	quantity := m.console.PromptInt("Quantity to stock > ", 0, 1_000_000)

	product, err := m.products.Add(m.active.ID, name, price, description, quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNameRequired) {
			m.console.Print("A product name is required.")
			return
		}
		m.fail("Could not save the product.", err)
		return
	}
	m.console.Print("%s added for $%s.", product.Name, product.Price.StringFixed(2))
}

// maintainProducts loops over the active customer's products until the
// operator takes the exit path, offering update and delete on each pass.
func (m *Menu) maintainProducts() {
	for {
		products, err := m.products.ByCustomer(m.active.ID)
		if err != nil {
			m.fail("Could not list your products.", err)
			return
		}
		if len(products) == 0 {
			m.console.Print("You have no products.")
			m.console.Pause()
			return
		}

		m.console.Print("Choose a product:")
		for i, p := range products {
			m.console.Print("%d. %s ($%s)", i+1, p.Name, p.Price.StringFixed(2))
		}
		exit := len(products) + 1
		m.console.Print("%d. Exit", exit)

		choice := m.console.PromptInt("> ", 1, exit)
		if choice == exit {
			return
		}

		product := products[choice-1]
		m.console.Print("1. Update %s", product.Name)
		m.console.Print("2. Delete %s", product.Name)
		m.console.Print("3. Back")
		switch m.console.PromptInt("> ", 1, 3) {
		case 1:
			m.updateProduct(product)
		case 2:
			m.deleteProduct(product)
		}
	}
}

func (m *Menu) updateProduct(product model.Product) {
	if name := m.console.Prompt("New name (blank to keep) > "); name != "" {
		product.Name = name
	}
	if m.console.PromptYesNo("Change price? (Y/N) > ") {
		product.Price = m.console.PromptDecimal("New price > ")
	}
	if description := m.console.Prompt("New description (blank to keep) > "); description != "" {
		product.Description = description
	}

	if err := m.products.Update(&product); err != nil {
		m.fail("Could not update the product.", err)
		return
	}
	m.console.Print("Product updated.")
}

func (m *Menu) deleteProduct(product model.Product) {
	err := m.products.Delete(product.ID)
	switch {
	case errors.Is(err, service.ErrProductOnOrder):
		m.console.Print("This product is on an order - cannot delete.")
		m.console.Pause()
	case err != nil:
		m.fail("Could not delete the product.", err)
	default:
		m.console.Print("Product deleted!")
	}
}
