package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/model"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
)

func bicycle(customerID int64) model.Product {
	return model.Product{
		ID:          1,
		CustomerID:  customerID,
		Name:        "Bicycle",
		Price:       decimal.RequireFromString("55.25"),
		Description: "Awesome bike",
		Quantity:    1,
	}
}

func TestCreateOrder(t *testing.T) {
	repo := newMockOrderRepository()
	orders := service.NewOrderService(repo)

	order, err := orders.Create(1)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(1), order.CustomerID)
	assert.Nil(t, order.PaymentTypeID)
	assert.Nil(t, order.CompletedDate)

	t.Run("open order matches", func(t *testing.T) {
		open, err := orders.OpenOrder(1)
		require.NoError(t, err)
		assert.Equal(t, order.ID, open.ID)
		assert.Equal(t, int64(1), open.CustomerID)
		assert.Nil(t, open.PaymentTypeID)
		assert.Nil(t, open.CompletedDate)
	})

	t.Run("second open order rejected", func(t *testing.T) {
		_, err := orders.Create(1)
		assert.ErrorIs(t, err, service.ErrOpenOrderExists)
	})

	t.Run("no open order for other customer", func(t *testing.T) {
		_, err := orders.OpenOrder(99)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestAttachProduct(t *testing.T) {
	repo := newMockOrderRepository()
	orders := service.NewOrderService(repo)

	order, err := orders.Create(1)
	require.NoError(t, err)
	repo.addProduct(bicycle(1))

	require.NoError(t, orders.AttachProduct(order.ID, 1))

	t.Run("single product round trips", func(t *testing.T) {
		product, err := orders.ProductInOrder(order.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Bicycle", product.Name)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("55.25")))
		assert.Equal(t, "Awesome bike", product.Description)
		assert.Equal(t, 1, product.Quantity)
	})

	t.Run("missing product is distinguishable", func(t *testing.T) {
		_, err := orders.ProductInOrder(order.ID, 42)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("duplicate attachment permitted", func(t *testing.T) {
		require.NoError(t, orders.AttachProduct(order.ID, 1))
		withProducts, err := orders.OrderWithProducts(order.ID)
		require.NoError(t, err)
		assert.Len(t, withProducts.Products, 2)
	})
}

func TestDetachProduct(t *testing.T) {
	repo := newMockOrderRepository()
	orders := service.NewOrderService(repo)

	order, err := orders.Create(1)
	require.NoError(t, err)
	repo.addProduct(bicycle(1))
	require.NoError(t, orders.AttachProduct(order.ID, 1))

	require.NoError(t, orders.DetachProduct(order.ID, 1))
	withProducts, err := orders.OrderWithProducts(order.ID)
	require.NoError(t, err)
	assert.Empty(t, withProducts.Products)

	t.Run("no matching row is not an error", func(t *testing.T) {
		assert.NoError(t, orders.DetachProduct(order.ID, 42))
	})
}

func TestCloseOrder(t *testing.T) {
	repo := newMockOrderRepository()
	orders := service.NewOrderService(repo)

	order, err := orders.Create(1)
	require.NoError(t, err)
	repo.addProduct(bicycle(1))
	require.NoError(t, orders.AttachProduct(order.ID, 1))

	require.NoError(t, orders.Close(order.ID, 7))

	closed, err := orders.ByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.PaymentTypeID)
	assert.Equal(t, int64(7), *closed.PaymentTypeID)
	require.NotNil(t, closed.CompletedDate)
	assert.True(t, closed.IsClosed())

	t.Run("re-closing rejected", func(t *testing.T) {
		err := orders.Close(order.ID, 8)
		assert.ErrorIs(t, err, service.ErrOrderAlreadyClosed)

		unchanged, err := orders.ByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), *unchanged.PaymentTypeID)
		assert.Equal(t, *closed.CompletedDate, *unchanged.CompletedDate)
	})

	t.Run("closed order no longer open", func(t *testing.T) {
		_, err := orders.OpenOrder(1)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := orders.Close(999, 7)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}
