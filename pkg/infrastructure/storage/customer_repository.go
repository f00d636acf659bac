package storage

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

func NewCustomerRepository(db *sqlx.DB) model.CustomerRepository {
	return &customerRepository{db: db}
}

type customerRepository struct {
	db *sqlx.DB
}

func (r *customerRepository) Create(customer *model.Customer) error {
	res, err := r.db.NamedExec(
		"INSERT INTO Customer (Name, StreetAddress, City, State, PostalCode, PhoneNumber) "+
			"VALUES (:Name, :StreetAddress, :City, :State, :PostalCode, :PhoneNumber)", customer)
	if err != nil {
		return errors.Wrap(err, "insert customer")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read inserted customer id")
	}
	customer.ID = id
	return nil
}

func (r *customerRepository) Find(id int64) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Get(&customer, "SELECT * FROM Customer WHERE Id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query customer")
	}
	return &customer, nil
}

func (r *customerRepository) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.Select(&customers, "SELECT * FROM Customer ORDER BY Name"); err != nil {
		return nil, errors.Wrap(err, "query customers")
	}
	return customers, nil
}
