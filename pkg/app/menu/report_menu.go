package menu

func (m *Menu) showReports() {
	sales, err := m.reports.PopularProducts(10)
	if err != nil {
		m.fail("Could not build the report.", err)
		return
	}
	if len(sales) == 0 {
		m.console.Print("No completed orders yet.")
		m.console.Pause()
		return
	}

	m.console.Print("Most popular products:")
	for i, s := range sales {
		m.console.Print("%d. %s - %d sold", i+1, s.Product.Name, s.UnitsSold)
	}
	m.console.Pause()
}
