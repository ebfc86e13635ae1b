package service

import (
	"context"
	"strings"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBatch_DefaultsAndTotals(t *testing.T) {
	batchRepo := new(MockBatchRepository)
	svc := NewBatchService(batchRepo)
	ctx := context.Background()

	batchRepo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.CreateBatch(ctx, CreateBatchRequest{
		Items: []CreateCargoItemRequest{
			{ProductName: "Laptops", Quantity: "10", UnitPrice: "450"},
			{ProductName: "Docking stations", Quantity: "20", UnitPrice: "30", CustomsValue: "650"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.BatchStatusDraft, res.Status)
	assert.Equal(t, model.ClearanceStandard, res.ClearanceType)
	// 10*450 plus the explicit customs value.
	assert.Equal(t, "5150.00", res.TotalValue)
	assert.True(t, strings.HasPrefix(res.BatchNo, "IMB-"))

	require.Len(t, res.Items, 2)
	assert.Equal(t, model.MatchStatusPending, res.Items[0].MatchStatus)

	created := batchRepo.Calls[0].Arguments.Get(1).(*model.ImportBatch)
	assert.Equal(t, "4500.00", created.Items[0].CustomsValue.StringFixed(2))
	assert.Equal(t, "650.00", created.Items[1].CustomsValue.StringFixed(2))
}

func TestCreateBatch_RejectsInvalidItems(t *testing.T) {
	svc := NewBatchService(new(MockBatchRepository))
	ctx := context.Background()

	_, err := svc.CreateBatch(ctx, CreateBatchRequest{
		Items: []CreateCargoItemRequest{{ProductName: "Laptops", Quantity: "0", UnitPrice: "450"}},
	})
	assert.ErrorContains(t, err, "quantity")

	_, err = svc.CreateBatch(ctx, CreateBatchRequest{
		Items: []CreateCargoItemRequest{{ProductName: "Laptops", Quantity: "10", UnitPrice: "-1"}},
	})
	assert.ErrorContains(t, err, "unit_price")

	_, err = svc.CreateBatch(ctx, CreateBatchRequest{
		Items: []CreateCargoItemRequest{{ProductName: "Laptops", Quantity: "10", UnitPrice: "450", CustomsValue: "0"}},
	})
	assert.ErrorContains(t, err, "customs_value")
}
