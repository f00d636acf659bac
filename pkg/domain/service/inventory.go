package service

import (
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

// InventoryService derives product availability from the order history.
// Stocked quantity never changes in storage; units sold are counted off
// completed orders on every call.
type InventoryService interface {
	AvailableQuantity(product *model.Product) (int, error)
	HasAvailableQuantity(product *model.Product) (bool, error)
	IsProductOnAnyOrder(productID int64) (bool, error)
}

func NewInventoryService(orders model.OrderRepository) InventoryService {
	return &inventoryService{orders: orders}
}

type inventoryService struct {
	orders model.OrderRepository
}

func (s *inventoryService) AvailableQuantity(product *model.Product) (int, error) {
	sold, err := s.orders.CountCompletedSales(product.ID)
	if err != nil {
		return 0, err
	}
	return product.Quantity - sold, nil
}

func (s *inventoryService) HasAvailableQuantity(product *model.Product) (bool, error) {
	available, err := s.AvailableQuantity(product)
	if err != nil {
		return false, err
	}
	return available > 0, nil
}

// IsProductOnAnyOrder reports whether any order, open or closed, references
// the product. Used to stop deletion of purchased products.
func (s *inventoryService) IsProductOnAnyOrder(productID int64) (bool, error) {
	refs, err := s.orders.CountReferences(productID)
	if err != nil {
		return false, err
	}
	return refs > 0, nil
}
