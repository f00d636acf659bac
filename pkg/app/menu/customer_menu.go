package menu

import (
	"errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
)

func (m *Menu) createCustomer() {
	m.console.Print("Create a customer account")

	name := m.console.Prompt("Name > ")
	street := m.console.Prompt("Street address > ")
	city := m.console.Prompt("City > ")
	state := m.console.Prompt("State > ")
	postal := m.console.Prompt("Postal code > ")
	phone := m.console.Prompt("Phone number > ")

	customer, err := m.customers.Register(name, street, city, state, postal, phone)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNameRequired) {
			m.console.Print("A name is required.")
			return
		}
		m.fail("Could not create the customer account.", err)
		return
	}

	m.console.Print("Welcome to Bangazon, %s!", customer.Name)
}

func (m *Menu) chooseActiveCustomer() {
	customers, err := m.customers.All()
	if err != nil {
		m.fail("Could not list customers.", err)
		return
	}
	if len(customers) == 0 {
		m.console.Print("No customer accounts yet - create one first.")
		m.console.Pause()
		return
	}

	m.console.Print("Choose active customer:")
	for i, c := range customers {
		m.console.Print("%d. %s", i+1, c.Name)
	}
	choice := m.console.PromptInt("> ", 1, len(customers))
	m.active = &customers[choice-1]
}
