package service

import (
	"errors"
	"strings"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

var ErrCustomerNameRequired = errors.New("customer name is required")

type CustomerService interface {
	Register(name, streetAddress, city, state, postalCode, phoneNumber string) (*model.Customer, error)
	All() ([]model.Customer, error)
	ByID(id int64) (*model.Customer, error)
}

func NewCustomerService(repo model.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

type customerService struct {
	repo model.CustomerRepository
}

func (s *customerService) Register(name, streetAddress, city, state, postalCode, phoneNumber string) (*model.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCustomerNameRequired
	}

	customer := &model.Customer{
		Name:          name,
		StreetAddress: streetAddress,
		City:          city,
		State:         state,
		PostalCode:    postalCode,
		PhoneNumber:   phoneNumber,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) All() ([]model.Customer, error) {
	return s.repo.FindAll()
}

func (s *customerService) ByID(id int64) (*model.Customer, error) {
	return s.repo.Find(id)
}
