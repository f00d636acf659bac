package service

import (
	"errors"
	"strings"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

var (
	ErrPaymentLabelRequired = errors.New("payment type label is required")
	ErrInvalidAccountNumber = errors.New("account number must be positive")
)

type PaymentTypeService interface {
	Add(customerID int64, label string, accountNumber int64) (*model.PaymentType, error)
	ByID(id int64) (*model.PaymentType, error)
	ByCustomer(customerID int64) ([]model.PaymentType, error)
}

func NewPaymentTypeService(repo model.PaymentTypeRepository) PaymentTypeService {
	return &paymentTypeService{repo: repo}
}

type paymentTypeService struct {
	repo model.PaymentTypeRepository
}

func (s *paymentTypeService) Add(customerID int64, label string, accountNumber int64) (*model.PaymentType, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrPaymentLabelRequired
	}
	if accountNumber <= 0 {
		return nil, ErrInvalidAccountNumber
	}

	paymentType := &model.PaymentType{
		CustomerID:    customerID,
		Type:          label,
		AccountNumber: accountNumber,
	}
	if err := s.repo.Create(paymentType); err != nil {
		return nil, err
	}
	return paymentType, nil
}

func (s *paymentTypeService) ByID(id int64) (*model.PaymentType, error) {
	return s.repo.Find(id)
}

func (s *paymentTypeService) ByCustomer(customerID int64) ([]model.PaymentType, error) {
	return s.repo.FindByCustomer(customerID)
}
