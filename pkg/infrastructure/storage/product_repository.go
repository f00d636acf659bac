package storage

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

func NewProductRepository(db *sqlx.DB) model.ProductRepository {
	return &productRepository{db: db}
}

type productRepository struct {
	db *sqlx.DB
}

func (r *productRepository) Create(product *model.Product) error {
	res, err := r.db.NamedExec(
		"INSERT INTO Product (CustomerId, Name, Price, Description, Quantity) "+
			"VALUES (:CustomerId, :Name, :Price, :Description, :Quantity)", product)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read inserted product id")
	}
	product.ID = id
	return nil
}

func (r *productRepository) Find(id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.Get(&product, "SELECT * FROM Product WHERE Id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}
	return &product, nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Select(&products, "SELECT * FROM Product ORDER BY Name"); err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return products, nil
}

func (r *productRepository) FindByCustomer(customerID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Select(&products,
		"SELECT * FROM Product WHERE CustomerId = ? ORDER BY Name", customerID)
	if err != nil {
		return nil, errors.Wrap(err, "query customer products")
	}
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	res, err := r.db.NamedExec(
		"UPDATE Product SET Name = :Name, Price = :Price, Description = :Description, "+
			"Quantity = :Quantity WHERE Id = :Id", product)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "read updated row count")
	}
	if affected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(id int64) error {
	res, err := r.db.Exec("DELETE FROM Product WHERE Id = ?", id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "read deleted row count")
	}
	if affected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}
