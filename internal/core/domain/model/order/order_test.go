package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"
)

func validRecipient(t *testing.T) order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient("Anna Svensson", "Storgatan 1", "411 01", "Göteborg", "+46701234567")
	require.NoError(t, err)
	return recipient
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending and unassigned", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "5566778899", "candles.example.com", "Vasagatan 7",
			order.HomeDelivery, validRecipient(t), 2, "leave at door")

		require.NoError(t, err)
		assert.Equal(t, "5566778899", o.ExternalOrderID())
		assert.Equal(t, "candles.example.com", o.ShopDomain())
		assert.Equal(t, "Vasagatan 7", o.StoreAddress())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 2, o.Parcels())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.Facility())
		require.NoError(t, o.Validate())
	})

	t.Run("shop domain is normalized to lower case", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "Candles.Example.COM", "",
			order.HomeDelivery, validRecipient(t), 1, "")

		require.NoError(t, err)
		assert.Equal(t, "candles.example.com", o.ShopDomain())
	})

	t.Run("empty external order id is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "  ", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero parcels are rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown order type is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.TypeUnknown, validRecipient(t), 1, "")

		require.Error(t, err)
	})

	t.Run("unconstructed recipient is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, order.Recipient{}, 1, "")

		require.Error(t, err)
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("pending order becomes assigned", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")
		require.NoError(t, err)

		courierID := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(courierID))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("reassignment replaces the courier", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.NoError(t, o.AssignCourier(kernel.NewUUID()))
		second := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(second))

		assert.True(t, o.Courier().IsEqual(second))
	})

	t.Run("completed order cannot be assigned", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.NoError(t, o.AssignCourier(kernel.NewUUID()))
		require.NoError(t, o.Complete())

		require.Error(t, o.AssignCourier(kernel.NewUUID()))
	})

	t.Run("invalid courier id is rejected", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.Error(t, o.AssignCourier(kernel.UUID{}))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_AttachFacility(t *testing.T) {
	snapshot := order.FacilitySnapshot{
		ID:      7,
		Name:    "Paketskåp Nordstan",
		Address: "Götgatan 10, 41105 Göteborg",
		Phone:   "+46311234567",
	}

	t.Run("locker order carries the snapshot", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.Locker, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.NoError(t, o.AttachFacility(snapshot))
		require.NotNil(t, o.Facility())
		assert.Equal(t, int64(7), o.Facility().ID)
		assert.Equal(t, "Paketskåp Nordstan", o.Facility().Name)
	})

	t.Run("home delivery order rejects a facility", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.Error(t, o.AttachFacility(snapshot))
		assert.Nil(t, o.Facility())
	})

	t.Run("snapshot without id is rejected", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.Locker, validRecipient(t), 1, "")
		require.NoError(t, err)

		require.Error(t, o.AttachFacility(order.FacilitySnapshot{Name: "no id"}))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores assigned order with courier", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "1", "candles.example.com", "Vasagatan 7",
			order.HomeDelivery, validRecipient(t), 1, "",
			order.Assigned, &courierID, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("assigned status without courier is inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "",
			order.Assigned, nil, nil)

		require.Error(t, err)
	})

	t.Run("pending status with courier is inconsistent", func(t *testing.T) {
		courierID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "1", "candles.example.com", "",
			order.HomeDelivery, validRecipient(t), 1, "",
			order.Pending, &courierID, nil)

		require.Error(t, err)
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}
