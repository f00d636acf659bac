package tests

import (
	"errors"
	"sort"
	"time"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

type join struct {
	orderID   int64
	productID int64
}

var _ model.OrderRepository = &mockOrderRepository{}

// mockOrderRepository keeps orders, products and join rows in memory with
// the same permissive semantics as the SQLite store.
type mockOrderRepository struct {
	nextID   int64
	orders   map[int64]*model.Order
	products map[int64]model.Product
	joins    []join
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		orders:   make(map[int64]*model.Order),
		products: make(map[int64]model.Product),
	}
}

func (m *mockOrderRepository) addProduct(p model.Product) {
	m.products[p.ID] = p
}

func (m *mockOrderRepository) Create(order *model.Order) error {
	m.nextID++
	order.ID = m.nextID
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepository) Find(id int64) (*model.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (m *mockOrderRepository) FindOpenByCustomer(customerID int64) (*model.Order, error) {
	var found *model.Order
	for _, order := range m.orders {
		if order.CustomerID != customerID || order.PaymentTypeID != nil {
			continue
		}
		if found == nil || order.ID < found.ID {
			found = order
		}
	}
	if found == nil {
		return nil, model.ErrOrderNotFound
	}
	clone := *found
	return &clone, nil
}

func (m *mockOrderRepository) FindWithProducts(id int64) (*model.Order, error) {
	order, err := m.Find(id)
	if err != nil {
		return nil, err
	}
	for _, j := range m.joins {
		if j.orderID != id {
			continue
		}
		product, ok := m.products[j.productID]
		if !ok {
			return nil, errors.New("join row references unknown product")
		}
		order.Products = append(order.Products, product)
	}
	return order, nil
}

func (m *mockOrderRepository) FindProductInOrder(orderID, productID int64) (*model.Product, error) {
	for _, j := range m.joins {
		if j.orderID == orderID && j.productID == productID {
			product := m.products[j.productID]
			return &product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (m *mockOrderRepository) AttachProduct(orderID, productID int64) error {
	m.joins = append(m.joins, join{orderID: orderID, productID: productID})
	return nil
}

func (m *mockOrderRepository) DetachProduct(orderID, productID int64) error {
	kept := m.joins[:0]
	for _, j := range m.joins {
		if j.orderID == orderID && j.productID == productID {
			continue
		}
		kept = append(kept, j)
	}
	m.joins = kept
	return nil
}

func (m *mockOrderRepository) Close(orderID, paymentTypeID int64) error {
	order, ok := m.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	now := time.Now().UTC().Truncate(time.Second)
	order.PaymentTypeID = &paymentTypeID
	order.CompletedDate = &now
	return nil
}

func (m *mockOrderRepository) CountCompletedSales(productID int64) (int, error) {
	count := 0
	for _, j := range m.joins {
		if j.productID != productID {
			continue
		}
		if order, ok := m.orders[j.orderID]; ok && order.CompletedDate != nil {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderRepository) CountReferences(productID int64) (int, error) {
	count := 0
	for _, j := range m.joins {
		if j.productID == productID {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderRepository) TopSelling(limit int) ([]model.ProductSales, error) {
	sold := make(map[int64]int)
	for _, j := range m.joins {
		if order, ok := m.orders[j.orderID]; ok && order.CompletedDate != nil {
			sold[j.productID]++
		}
	}

	sales := make([]model.ProductSales, 0, len(sold))
	for productID, units := range sold {
		sales = append(sales, model.ProductSales{Product: m.products[productID], UnitsSold: units})
	}
	sort.Slice(sales, func(i, k int) bool {
		if sales[i].UnitsSold != sales[k].UnitsSold {
			return sales[i].UnitsSold > sales[k].UnitsSold
		}
		return sales[i].Product.Name < sales[k].Product.Name
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

var _ model.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	nextID int64
	store  map[int64]*model.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{store: make(map[int64]*model.Product)}
}

func (m *mockProductRepository) Create(product *model.Product) error {
	m.nextID++
	product.ID = m.nextID
	stored := *product
	m.store[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) Find(id int64) (*model.Product, error) {
	product, ok := m.store[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (m *mockProductRepository) FindAll() ([]model.Product, error) {
	products := make([]model.Product, 0, len(m.store))
	for _, p := range m.store {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, k int) bool { return products[i].Name < products[k].Name })
	return products, nil
}

func (m *mockProductRepository) FindByCustomer(customerID int64) ([]model.Product, error) {
	all, _ := m.FindAll()
	var products []model.Product
	for _, p := range all {
		if p.CustomerID == customerID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) Update(product *model.Product) error {
	if _, ok := m.store[product.ID]; !ok {
		return model.ErrProductNotFound
	}
	stored := *product
	m.store[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) Delete(id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(m.store, id)
	return nil
}

var _ model.PaymentTypeRepository = &mockPaymentTypeRepository{}

type mockPaymentTypeRepository struct {
	nextID int64
	store  map[int64]*model.PaymentType
}

func newMockPaymentTypeRepository() *mockPaymentTypeRepository {
	return &mockPaymentTypeRepository{store: make(map[int64]*model.PaymentType)}
}

func (m *mockPaymentTypeRepository) Create(paymentType *model.PaymentType) error {
	m.nextID++
	paymentType.ID = m.nextID
	stored := *paymentType
	m.store[paymentType.ID] = &stored
	return nil
}

func (m *mockPaymentTypeRepository) Find(id int64) (*model.PaymentType, error) {
	paymentType, ok := m.store[id]
	if !ok {
		return nil, model.ErrPaymentTypeNotFound
	}
	clone := *paymentType
	return &clone, nil
}

func (m *mockPaymentTypeRepository) FindByCustomer(customerID int64) ([]model.PaymentType, error) {
	var paymentTypes []model.PaymentType
	for _, pt := range m.store {
		if pt.CustomerID == customerID {
			paymentTypes = append(paymentTypes, *pt)
		}
	}
	sort.Slice(paymentTypes, func(i, k int) bool { return paymentTypes[i].ID < paymentTypes[k].ID })
	return paymentTypes, nil
}

var _ model.CustomerRepository = &mockCustomerRepository{}

type mockCustomerRepository struct {
	nextID int64
	store  map[int64]*model.Customer
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{store: make(map[int64]*model.Customer)}
}

func (m *mockCustomerRepository) Create(customer *model.Customer) error {
	m.nextID++
	customer.ID = m.nextID
	stored := *customer
	m.store[customer.ID] = &stored
	return nil
}

func (m *mockCustomerRepository) Find(id int64) (*model.Customer, error) {
	customer, ok := m.store[id]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	clone := *customer
	return &clone, nil
}

func (m *mockCustomerRepository) FindAll() ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(m.store))
	for _, c := range m.store {
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, k int) bool { return customers[i].Name < customers[k].Name })
	return customers, nil
}
