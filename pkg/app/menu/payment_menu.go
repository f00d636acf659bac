package menu

func (m *Menu) createPaymentType() {
	m.console.Print("Create a payment option")

	label := m.console.Prompt("Payment type (e.g. Visa) > ")
	account := m.console.PromptInt64("Account number > ")

	if _, err := m.payments.Add(m.active.ID, label, account); err != nil {
		m.fail("Could not save the payment option.", err)
		return
	}
	m.console.Print("Payment option saved.")
}
