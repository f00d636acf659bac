package service

import (
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

// ReportService backs the read-only reports menu.
type ReportService interface {
	PopularProducts(limit int) ([]model.ProductSales, error)
}

func NewReportService(orders model.OrderRepository) ReportService {
	return &reportService{orders: orders}
}

type reportService struct {
	orders model.OrderRepository
}

// PopularProducts ranks products by units sold on completed orders.
func (s *reportService) PopularProducts(limit int) ([]model.ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.orders.TopSelling(limit)
}
