package opensea_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/mocks"
	"github.com/alexpan006/blockdash-api/internal/providers/opensea"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestOpenSeaClient_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := opensea.NewClient(mockHTTPClient, nil, "https://api.opensea.io/api/v2", "test-api-key", 50, mockJSON)

	ctx := context.Background()
	contractAddress := "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"

	responseJSON := []byte(`{
		"asset_events": [
			{
				"event_type": "transfer",
				"transaction": "0xAAA1",
				"from_address": "0x1111111111111111111111111111111111111111",
				"to_address": "0x2222222222222222222222222222222222222222",
				"event_timestamp": 1700000000,
				"nft": {
					"identifier": "42",
					"collection": "boredapeyachtclub",
					"contract": "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"
				},
				"payment": null
			}
		],
		"next": "cursor-2"
	}`)

	expectedURL := "https://api.opensea.io/api/v2/events/chain/ethereum/contract/0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d/nfts/42?event_type=sale&event_type=transfer&limit=50&after=1690000000&before=1700000000"
	expectedHeaders := map[string]string{
		"X-API-KEY": "test-api-key",
	}

	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, expectedHeaders).
		Return(responseJSON, nil)

	expectedPage := &opensea.EventsPage{
		AssetEvents: []opensea.AssetEvent{
			{
				EventType:      "transfer",
				Transaction:    "0xAAA1",
				FromAddress:    "0x1111111111111111111111111111111111111111",
				ToAddress:      "0x2222222222222222222222222222222222222222",
				EventTimestamp: 1700000000,
				NFT: &opensea.AssetRef{
					Identifier: "42",
					Collection: "boredapeyachtclub",
					Contract:   "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
				},
			},
		},
		Next: "cursor-2",
	}

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			page := v.(*opensea.EventsPage)
			*page = *expectedPage
			return nil
		})

	result, err := client.ListEvents(ctx, contractAddress, "42", 1690000000, 1700000000, "")

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "cursor-2", result.Next)
	require.Len(t, result.AssetEvents, 1)
	assert.Equal(t, "transfer", result.AssetEvents[0].EventType)
	assert.Equal(t, "42", result.AssetEvents[0].NFT.Identifier)
}

func TestOpenSeaClient_ListEvents_WithCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := opensea.NewClient(mockHTTPClient, nil, "https://api.opensea.io/api/v2", "test-api-key", 25, mockJSON)

	ctx := context.Background()

	expectedURL := "https://api.opensea.io/api/v2/events/chain/ethereum/contract/0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d/nfts/7?event_type=sale&event_type=transfer&limit=25&after=100&before=200&next=abc%3D%3D"

	responseJSON := []byte(`{"asset_events": [], "next": ""}`)

	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, gomock.Any()).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			page := v.(*opensea.EventsPage)
			page.AssetEvents = []opensea.AssetEvent{}
			page.Next = ""
			return nil
		})

	result, err := client.ListEvents(ctx, "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", "7", 100, 200, "abc==")

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Next)
	assert.Empty(t, result.AssetEvents)
}

func TestOpenSeaClient_ListEvents_NoAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	// Create client without API key (empty string)
	client := opensea.NewClient(mockHTTPClient, nil, "https://api.opensea.io/api/v2", "", 50, mockJSON)

	ctx := context.Background()

	result, err := client.ListEvents(ctx, "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", "1", 0, 100, "")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, opensea.ErrNoAPIKey)
}

func TestOpenSeaClient_ListEvents_APIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := opensea.NewClient(mockHTTPClient, nil, "https://api.opensea.io/api/v2", "test-api-key", 50, mockJSON)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	result, err := client.ListEvents(ctx, "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", "1", 0, 100, "")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to call OpenSea API")
}

func TestOpenSeaClient_ListEvents_UnmarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := opensea.NewClient(mockHTTPClient, nil, "https://api.opensea.io/api/v2", "test-api-key", 50, mockJSON)

	ctx := context.Background()

	responseJSON := []byte(`invalid json`)

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		Return(assert.AnError)

	result, err := client.ListEvents(ctx, "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", "1", 0, 100, "")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to unmarshal OpenSea response")
}

func TestAssetEvent_Normalize_Transfer(t *testing.T) {
	event := opensea.AssetEvent{
		EventType:      "transfer",
		Transaction:    "0xABCDEF",
		FromAddress:    "0x1111111111111111111111111111111111111111",
		ToAddress:      "0x2222222222222222222222222222222222222222",
		EventTimestamp: 1700000000,
		NFT: &opensea.AssetRef{
			Identifier: "42",
			Collection: "boredapeyachtclub",
		},
	}

	result, err := event.Normalize("fallback")

	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeTransfer, result.Type)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", result.From)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", result.To)
	assert.Equal(t, "boredapeyachtclub", result.Collection)
	assert.Equal(t, "42", result.Identifier)
	assert.Equal(t, "0xabcdef", result.TxHash)
	assert.Equal(t, int64(1700000000), result.Timestamp)
	// No payment on a plain transfer
	assert.Equal(t, domain.UnknownPayment(), result.Payment)
	assert.True(t, result.Valid())
	assert.False(t, result.Mint())
}

func TestAssetEvent_Normalize_SaleUsesSellerAndBuyer(t *testing.T) {
	event := opensea.AssetEvent{
		EventType:      "sale",
		Transaction:    "0xSALE01",
		Seller:         "0x3333333333333333333333333333333333333333",
		Buyer:          "0x4444444444444444444444444444444444444444",
		EventTimestamp: 1700000001,
		NFT: &opensea.AssetRef{
			Identifier: "7",
			Collection: "degods-eth",
		},
		Payment: &opensea.PaymentToken{
			Quantity:     "1500000000000000000",
			TokenAddress: "0x0000000000000000000000000000000000000000",
			Decimals:     18,
			Symbol:       "ETH",
		},
	}

	result, err := event.Normalize("")

	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeSale, result.Type)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", result.From)
	assert.Equal(t, "0x4444444444444444444444444444444444444444", result.To)
	assert.Equal(t, "1500000000000000000", result.Payment.Quantity)
	assert.Equal(t, "ETH", result.Payment.Symbol)
	assert.Equal(t, int64(18), result.Payment.Decimals)
}

func TestAssetEvent_Normalize_MintFromZeroAddress(t *testing.T) {
	event := opensea.AssetEvent{
		EventType:      "transfer",
		Transaction:    "0xMINT01",
		FromAddress:    domain.ETHEREUM_ZERO_ADDRESS,
		ToAddress:      "0x2222222222222222222222222222222222222222",
		EventTimestamp: 1700000002,
		NFT: &opensea.AssetRef{
			Identifier: "1",
			Collection: "boredapeyachtclub",
		},
	}

	result, err := event.Normalize("")

	require.NoError(t, err)
	assert.True(t, result.Mint())
}

func TestAssetEvent_Normalize_PartialPayment(t *testing.T) {
	event := opensea.AssetEvent{
		EventType:      "sale",
		Transaction:    "0xSALE02",
		Seller:         "0x3333333333333333333333333333333333333333",
		Buyer:          "0x4444444444444444444444444444444444444444",
		EventTimestamp: 1700000003,
		NFT: &opensea.AssetRef{
			Identifier: "9",
		},
		Payment: &opensea.PaymentToken{
			Quantity: "",
			Decimals: 0,
		},
	}

	result, err := event.Normalize("degods-eth")

	require.NoError(t, err)
	assert.Equal(t, "degods-eth", result.Collection)
	assert.Equal(t, "0", result.Payment.Quantity)
	assert.Equal(t, domain.UNKNOWN_PAYMENT_VALUE, result.Payment.Symbol)
	assert.Equal(t, domain.UNKNOWN_PAYMENT_VALUE, result.Payment.TokenAddress)
}

func TestAssetEvent_Normalize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		event opensea.AssetEvent
	}{
		{
			name: "unknown event type",
			event: opensea.AssetEvent{
				EventType:   "listing",
				Transaction: "0x01",
				NFT:         &opensea.AssetRef{Identifier: "1"},
			},
		},
		{
			name: "missing nft",
			event: opensea.AssetEvent{
				EventType:   "transfer",
				Transaction: "0x01",
			},
		},
		{
			name: "missing identifier",
			event: opensea.AssetEvent{
				EventType:   "transfer",
				Transaction: "0x01",
				NFT:         &opensea.AssetRef{},
			},
		},
		{
			name: "missing transaction hash",
			event: opensea.AssetEvent{
				EventType: "transfer",
				NFT:       &opensea.AssetRef{Identifier: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.event.Normalize("")
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestNormalizeEvents_SkipsUnusableEvents(t *testing.T) {
	events := []opensea.AssetEvent{
		{
			EventType:      "transfer",
			Transaction:    "0x01",
			FromAddress:    "0x1111111111111111111111111111111111111111",
			ToAddress:      "0x2222222222222222222222222222222222222222",
			EventTimestamp: 1700000000,
			NFT:            &opensea.AssetRef{Identifier: "1", Collection: "boredapeyachtclub"},
		},
		{
			// Skipped: order events never reach the graph
			EventType:   "listing",
			Transaction: "0x02",
			NFT:         &opensea.AssetRef{Identifier: "2"},
		},
		{
			EventType:      "sale",
			Transaction:    "0x03",
			Seller:         "0x3333333333333333333333333333333333333333",
			Buyer:          "0x4444444444444444444444444444444444444444",
			EventTimestamp: 1700000001,
			NFT:            &opensea.AssetRef{Identifier: "3", Collection: "boredapeyachtclub"},
		},
	}

	normalized := opensea.NormalizeEvents(context.Background(), events, "boredapeyachtclub")

	require.Len(t, normalized, 2)
	assert.Equal(t, "1", normalized[0].Identifier)
	assert.Equal(t, "3", normalized[1].Identifier)
}
