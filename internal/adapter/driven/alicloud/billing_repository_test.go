package alicloud

import (
	"context"
	"errors"
	"testing"

	bss "github.com/alibabacloud-go/bssopenapi-20171214/v3/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBssAPI struct {
	describeInstanceBillFunc func(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error)
	requests                 []*bss.DescribeInstanceBillRequest
}

func (m *mockBssAPI) DescribeInstanceBill(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error) {
	m.requests = append(m.requests, request)
	return m.describeInstanceBillFunc(request)
}

func billPage(next string, items ...*bss.DescribeInstanceBillResponseBodyDataItems) *bss.DescribeInstanceBillResponse {
	data := &bss.DescribeInstanceBillResponseBodyData{Items: items}
	if next != "" {
		data.NextToken = tea.String(next)
	}
	return &bss.DescribeInstanceBillResponse{
		Body: &bss.DescribeInstanceBillResponseBody{
			Success: tea.Bool(true),
			Data:    data,
		},
	}
}

func billItem(product, code, usage, unit string, amount float32) *bss.DescribeInstanceBillResponseBodyDataItems {
	return &bss.DescribeInstanceBillResponseBodyDataItems{
		ProductCode:     tea.String(product),
		ProductName:     tea.String(product),
		BillingItemCode: tea.String(code),
		InstanceID:      tea.String("i-" + product),
		Usage:           tea.String(usage),
		UsageUnit:       tea.String(unit),
		PretaxAmount:    tea.Float32(amount),
	}
}

func TestListInstanceBill_FollowsNextToken(t *testing.T) {
	mock := &mockBssAPI{
		describeInstanceBillFunc: func(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error) {
			switch tea.StringValue(request.NextToken) {
			case "":
				return billPage("t1", billItem("ecs", "ECS_Out_Bytes", "1", "GB", 0.1)), nil
			case "t1":
				return billPage("", billItem("oss", "OSS_Out_Traffic", "512", "MB", 2.5)), nil
			}
			return nil, errors.New("unexpected token")
		},
	}

	repo := NewBillingRepositoryWithAPI(mock, 0)
	items, err := repo.ListInstanceBill(context.Background(), entity.BillingCycle("2024-01"), entity.SubscriptionPayAsYouGo)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "ecs", items[0].ProductCode)
	assert.Equal(t, 0.1, items[0].PretaxAmount)
	assert.Equal(t, entity.SubscriptionPayAsYouGo, items[0].SubscriptionType)
	assert.Equal(t, "oss", items[1].ProductCode)
	assert.Equal(t, "MB", items[1].UsageUnit)

	require.Len(t, mock.requests, 2)
	for _, req := range mock.requests {
		assert.Equal(t, "2024-01", tea.StringValue(req.BillingCycle))
		assert.Equal(t, "PayAsYouGo", tea.StringValue(req.SubscriptionType))
		assert.True(t, tea.BoolValue(req.IsBillingItem))
		assert.Equal(t, int32(DefaultBillPageSize), tea.Int32Value(req.MaxResults))
	}
	assert.Nil(t, mock.requests[0].NextToken)
	assert.Equal(t, "t1", tea.StringValue(mock.requests[1].NextToken))
}

func TestListInstanceBill_PartialResultOnError(t *testing.T) {
	calls := 0
	mock := &mockBssAPI{
		describeInstanceBillFunc: func(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error) {
			calls++
			if calls == 1 {
				return billPage("t1", billItem("ecs", "ECS_Out_Bytes", "1", "GB", 1)), nil
			}
			return nil, errors.New("throttled")
		},
	}

	repo := NewBillingRepositoryWithAPI(mock, 50)
	items, err := repo.ListInstanceBill(context.Background(), entity.BillingCycle("2024-02"), entity.SubscriptionSubscription)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Len(t, items, 1)
	assert.Equal(t, int32(50), tea.Int32Value(mock.requests[0].MaxResults))
}

func TestListInstanceBill_UnsuccessfulBody(t *testing.T) {
	mock := &mockBssAPI{
		describeInstanceBillFunc: func(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error) {
			return &bss.DescribeInstanceBillResponse{
				Body: &bss.DescribeInstanceBillResponseBody{
					Success: tea.Bool(false),
					Code:    tea.String("InvalidParameter"),
					Message: tea.String("bad cycle"),
				},
			}, nil
		},
	}

	repo := NewBillingRepositoryWithAPI(mock, 0)
	items, err := repo.ListInstanceBill(context.Background(), entity.BillingCycle("2024-02"), entity.SubscriptionPayAsYouGo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidParameter")
	assert.Empty(t, items)
}

func TestListInstanceBill_EmptyData(t *testing.T) {
	mock := &mockBssAPI{
		describeInstanceBillFunc: func(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error) {
			return &bss.DescribeInstanceBillResponse{Body: &bss.DescribeInstanceBillResponseBody{Success: tea.Bool(true)}}, nil
		},
	}

	repo := NewBillingRepositoryWithAPI(mock, 0)
	items, err := repo.ListInstanceBill(context.Background(), entity.BillingCycle("2024-02"), entity.SubscriptionPayAsYouGo)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Len(t, mock.requests, 1)
}

func TestAmountToFloat64(t *testing.T) {
	assert.Equal(t, 0.0, amountToFloat64(nil))
	assert.Equal(t, 0.1, amountToFloat64(tea.Float32(0.1)))
	assert.Equal(t, 12.34, amountToFloat64(tea.Float32(12.34)))
}
