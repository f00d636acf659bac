package storage

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
)

// completedDateLayout matches SQLite's CURRENT_TIMESTAMP output (UTC).
const completedDateLayout = "2006-01-02 15:04:05"

// orderRow reads the nullable columns explicitly before conversion.
type orderRow struct {
	ID            int64          `db:"Id"`
	CustomerID    int64          `db:"CustomerId"`
	PaymentTypeID sql.NullInt64  `db:"PaymentTypeId"`
	CompletedDate sql.NullString `db:"CompletedDate"`
}

func (r orderRow) toModel() (*model.Order, error) {
	order := &model.Order{
		ID:         r.ID,
		CustomerID: r.CustomerID,
	}
	if r.PaymentTypeID.Valid {
		id := r.PaymentTypeID.Int64
		order.PaymentTypeID = &id
	}
	if r.CompletedDate.Valid {
		completed, err := time.ParseInLocation(completedDateLayout, r.CompletedDate.String, time.UTC)
		if err != nil {
			return nil, errors.Wrapf(err, "parse completed date %q", r.CompletedDate.String)
		}
		order.CompletedDate = &completed
	}
	return order, nil
}

func NewOrderRepository(db *sqlx.DB) model.OrderRepository {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *sqlx.DB
}

func (r *orderRepository) Create(order *model.Order) error {
	res, err := r.db.Exec(
		"INSERT INTO `Order` (CustomerId, PaymentTypeId, CompletedDate) VALUES (?, NULL, NULL)",
		order.CustomerID,
	)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read inserted order id")
	}
	order.ID = id
	return nil
}

func (r *orderRepository) Find(id int64) (*model.Order, error) {
	var row orderRow
	err := r.db.Get(&row,
		"SELECT Id, CustomerId, PaymentTypeId, CompletedDate FROM `Order` WHERE Id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query order")
	}
	return row.toModel()
}

func (r *orderRepository) FindOpenByCustomer(customerID int64) (*model.Order, error) {
	var row orderRow
	err := r.db.Get(&row,
		"SELECT Id, CustomerId, PaymentTypeId, CompletedDate FROM `Order` "+
			"WHERE CustomerId = ? AND PaymentTypeId IS NULL ORDER BY Id LIMIT 1", customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query open order")
	}
	return row.toModel()
}

func (r *orderRepository) FindWithProducts(id int64) (*model.Order, error) {
	order, err := r.Find(id)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	err = r.db.Select(&products,
		"SELECT p.Id, p.CustomerId, p.Name, p.Price, p.Description, p.Quantity "+
			"FROM OrderProduct op JOIN Product p ON p.Id = op.ProductId "+
			"WHERE op.OrderId = ? ORDER BY op.Id", id)
	if err != nil {
		return nil, errors.Wrap(err, "query order products")
	}
	order.Products = products
	return order, nil
}

func (r *orderRepository) FindProductInOrder(orderID, productID int64) (*model.Product, error) {
	var product model.Product
	err := r.db.Get(&product,
		"SELECT p.Id, p.CustomerId, p.Name, p.Price, p.Description, p.Quantity "+
			"FROM OrderProduct op JOIN Product p ON p.Id = op.ProductId "+
			"WHERE op.OrderId = ? AND p.Id = ? LIMIT 1", orderID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product in order")
	}
	return &product, nil
}

func (r *orderRepository) AttachProduct(orderID, productID int64) error {
	_, err := r.db.Exec(
		"INSERT INTO OrderProduct (OrderId, ProductId) VALUES (?, ?)", orderID, productID)
	return errors.Wrap(err, "attach product to order")
}

func (r *orderRepository) DetachProduct(orderID, productID int64) error {
	_, err := r.db.Exec(
		"DELETE FROM OrderProduct WHERE OrderId = ? AND ProductId = ?", orderID, productID)
	return errors.Wrap(err, "detach product from order")
}

func (r *orderRepository) Close(orderID, paymentTypeID int64) error {
	_, err := r.db.Exec(
		"UPDATE `Order` SET PaymentTypeId = ?, CompletedDate = CURRENT_TIMESTAMP WHERE Id = ?",
		paymentTypeID, orderID)
	return errors.Wrap(err, "close order")
}

func (r *orderRepository) CountCompletedSales(productID int64) (int, error) {
	var sold int
	err := r.db.Get(&sold,
		"SELECT COUNT(*) FROM OrderProduct op JOIN `Order` o ON o.Id = op.OrderId "+
			"WHERE o.CompletedDate IS NOT NULL AND op.ProductId = ?", productID)
	if err != nil {
		return 0, errors.Wrap(err, "count completed sales")
	}
	return sold, nil
}

func (r *orderRepository) CountReferences(productID int64) (int, error) {
	var refs int
	err := r.db.Get(&refs,
		"SELECT COUNT(*) FROM OrderProduct WHERE ProductId = ?", productID)
	if err != nil {
		return 0, errors.Wrap(err, "count product references")
	}
	return refs, nil
}

func (r *orderRepository) TopSelling(limit int) ([]model.ProductSales, error) {
	type row struct {
		model.Product
		UnitsSold int `db:"UnitsSold"`
	}
	var rows []row
	err := r.db.Select(&rows,
		"SELECT p.Id, p.CustomerId, p.Name, p.Price, p.Description, p.Quantity, "+
			"COUNT(op.Id) AS UnitsSold "+
			"FROM Product p JOIN OrderProduct op ON op.ProductId = p.Id "+
			"JOIN `Order` o ON o.Id = op.OrderId "+
			"WHERE o.CompletedDate IS NOT NULL "+
			"GROUP BY p.Id ORDER BY UnitsSold DESC, p.Name LIMIT ?", limit)
	if err != nil {
		return nil, errors.Wrap(err, "query top selling products")
	}

	sales := make([]model.ProductSales, 0, len(rows))
	for _, rec := range rows {
		sales = append(sales, model.ProductSales{Product: rec.Product, UnitsSold: rec.UnitsSold})
	}
	return sales, nil
}
