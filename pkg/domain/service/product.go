package service

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("product price cannot be negative")
	ErrNegativeQuantity    = errors.New("product quantity cannot be negative")
	ErrProductOnOrder      = errors.New("product is on an order and cannot be deleted")
)

type ProductService interface {
	Add(customerID int64, name string, price decimal.Decimal, description string, quantity int) (*model.Product, error)
	ByID(id int64) (*model.Product, error)
	All() ([]model.Product, error)
	ByCustomer(customerID int64) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id int64) error
}

func NewProductService(repo model.ProductRepository, inventory InventoryService) ProductService {
	return &productService{repo: repo, inventory: inventory}
}

type productService struct {
	repo      model.ProductRepository
	inventory InventoryService
}

func (s *productService) Add(customerID int64, name string, price decimal.Decimal, description string, quantity int) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrProductNameRequired
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	product := &model.Product{
		CustomerID:  customerID,
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    quantity,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ByID(id int64) (*model.Product, error) {
	return s.repo.Find(id)
}

func (s *productService) All() ([]model.Product, error) {
	return s.repo.FindAll()
}

func (s *productService) ByCustomer(customerID int64) ([]model.Product, error) {
	return s.repo.FindByCustomer(customerID)
}

func (s *productService) Update(product *model.Product) error {
	if product.Price.IsNegative() {
		return ErrNegativePrice
	}
	if product.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return s.repo.Update(product)
}

// Delete removes the product unless it appears on any order. The block
// applies to closed orders too: purchase history keeps its rows.
func (s *productService) Delete(id int64) error {
	onOrder, err := s.inventory.IsProductOnAnyOrder(id)
	if err != nil {
		return err
	}
	if onOrder {
		return ErrProductOnOrder
	}
	return s.repo.Delete(id)
}
