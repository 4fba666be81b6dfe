package delivery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdelivery "github.com/jhoicas/Inventario-entregas/internal/application/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

// fakeDirectory implementa ports.CustomerDirectory en memoria, sin store.
type fakeDirectory struct {
	customers []entity.Customer
	saveErr   error
	saved     int
}

func (f *fakeDirectory) List(context.Context) ([]entity.Customer, error) {
	return append([]entity.Customer(nil), f.customers...), nil
}

func (f *fakeDirectory) Save(_ context.Context, c []entity.Customer) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved++
	f.customers = c
	return nil
}

func TestCustomerStatusHook_MarcaDelivered(t *testing.T) {
	dir := &fakeDirectory{customers: []entity.Customer{{ID: "c1", Name: "Ana"}, {ID: "c2", Name: "Luis"}}}
	hook := appdelivery.NewCustomerStatusHook(dir)

	err := hook.OnDelivered(context.Background(), entity.Delivery{ID: "d1", Customer: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, 1, dir.saved)
	assert.Equal(t, entity.CustomerStatusDelivered, dir.customers[0].Status)
	assert.False(t, dir.customers[0].UpdatedAt.IsZero())
	assert.Empty(t, dir.customers[1].Status)
}

func TestCustomerStatusHook_ClienteInexistente(t *testing.T) {
	dir := &fakeDirectory{}
	err := appdelivery.NewCustomerStatusHook(dir).OnDelivered(context.Background(), entity.Delivery{Customer: "Nadie"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Zero(t, dir.saved)
}

func TestCustomerStatusHook_FalloAlGuardar(t *testing.T) {
	dir := &fakeDirectory{customers: []entity.Customer{{ID: "c1", Name: "Ana"}}, saveErr: errors.New("sin conexión")}
	err := appdelivery.NewCustomerStatusHook(dir).OnDelivered(context.Background(), entity.Delivery{Customer: "Ana"})
	assert.Error(t, err)
}

func TestCustomerStatusHook_SoloElPrimeroQueCoincide(t *testing.T) {
	dir := &fakeDirectory{customers: []entity.Customer{
		{Name: "Ana"},
		{Name: "Luis"},
		{Name: " ana "},
	}}
	err := appdelivery.NewCustomerStatusHook(dir).OnDelivered(context.Background(), entity.Delivery{Customer: "ANA"})
	require.NoError(t, err)

	assert.Equal(t, entity.CustomerStatusDelivered, dir.customers[0].Status)
	assert.Empty(t, dir.customers[1].Status, "otro cliente sin id no se toca")
	assert.Empty(t, dir.customers[2].Status, "solo el primero que coincide")
}
