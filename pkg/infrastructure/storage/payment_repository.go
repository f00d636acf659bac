package storage

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

func NewPaymentTypeRepository(db *sqlx.DB) model.PaymentTypeRepository {
	return &paymentTypeRepository{db: db}
}

type paymentTypeRepository struct {
	db *sqlx.DB
}

func (r *paymentTypeRepository) Create(paymentType *model.PaymentType) error {
	res, err := r.db.NamedExec(
		"INSERT INTO PaymentType (CustomerId, Type, AcctNumber) "+
			"VALUES (:CustomerId, :Type, :AcctNumber)", paymentType)
	if err != nil {
		return errors.Wrap(err, "insert payment type")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read inserted payment type id")
	}
	paymentType.ID = id
	return nil
}

func (r *paymentTypeRepository) Find(id int64) (*model.PaymentType, error) {
	var paymentType model.PaymentType
	err := r.db.Get(&paymentType, "SELECT * FROM PaymentType WHERE Id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPaymentTypeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query payment type")
	}
	return &paymentType, nil
}

func (r *paymentTypeRepository) FindByCustomer(customerID int64) ([]model.PaymentType, error) {
	var paymentTypes []model.PaymentType
	err := r.db.Select(&paymentTypes,
		"SELECT * FROM PaymentType WHERE CustomerId = ? ORDER BY Id", customerID)
	if err != nil {
		return nil, errors.Wrap(err, "query customer payment types")
	}
	return paymentTypes, nil
}
