package opensea

import (
	"context"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/ratelimit"
)

const PROVIDER_NAME = "opensea"

var ErrNoAPIKey = errors.New("no API key provided")

// AssetRef identifies the token an event touches
type AssetRef struct {
	Identifier string `json:"identifier"`
	Collection string `json:"collection"`
	Contract   string `json:"contract"`
}

// PaymentToken represents the payment attached to a sale event
type PaymentToken struct {
	Quantity     string `json:"quantity"`
	TokenAddress string `json:"token_address"`
	Decimals     int64  `json:"decimals"`
	Symbol       string `json:"symbol"`
}

// AssetEvent represents a single raw event from the OpenSea events feed.
// Transfers carry the parties in from_address/to_address, sales in seller/buyer.
type AssetEvent struct {
	EventType      string        `json:"event_type"`
	Transaction    string        `json:"transaction"`
	FromAddress    string        `json:"from_address"`
	ToAddress      string        `json:"to_address"`
	Seller         string        `json:"seller"`
	Buyer          string        `json:"buyer"`
	EventTimestamp int64         `json:"event_timestamp"`
	NFT            *AssetRef     `json:"nft"`
	Payment        *PaymentToken `json:"payment"`
}

// EventsPage is one page of the events feed. An empty Next terminates pagination.
type EventsPage struct {
	AssetEvents []AssetEvent `json:"asset_events"`
	Next        string       `json:"next"`
}

// Client defines the interface for OpenSea client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/opensea_client.go -package=mocks -mock_names=Client=MockOpenSeaClient
type Client interface {
	// ListEvents fetches one page of sale and transfer events for a token
	// within the (after, before) unix time window
	ListEvents(ctx context.Context, contractAddress, identifier string, after, before int64, cursor string) (*EventsPage, error)
}

// OpenSeaClient implements the OpenSea events feed client
type OpenSeaClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	pageLimit      int
	json           adapter.JSON
}

// NewClient creates a new OpenSea events client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, pageLimit int, json adapter.JSON) Client {
	return &OpenSeaClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		pageLimit:      pageLimit,
		json:           json,
	}
}

// ListEvents fetches one page of sale and transfer events for a token from OpenSea API v2
func (c *OpenSeaClient) ListEvents(ctx context.Context, contractAddress, identifier string, after, before int64, cursor string) (*EventsPage, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	// Build the API URL
	url := fmt.Sprintf("%s/events/chain/%s/contract/%s/nfts/%s?event_type=sale&event_type=transfer&limit=%d&after=%d&before=%d",
		c.apiURL,
		"ethereum",
		strings.ToLower(contractAddress),
		identifier,
		c.pageLimit,
		after,
		before,
	)
	if cursor != "" {
		url = fmt.Sprintf("%s&next=%s", url, neturl.QueryEscape(cursor))
	}

	// Make the request with API key header
	headers := map[string]string{
		"X-API-KEY": c.apiKey,
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenSea API: %w", err)
	}

	var page EventsPage
	if err := c.json.Unmarshal(respBody, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea response: %w", err)
	}

	return &page, nil
}

// Normalize converts a raw feed event into a domain transfer event.
// fallbackCollection fills in when the feed omits the collection slug.
func (e *AssetEvent) Normalize(fallbackCollection string) (*domain.TransferEvent, error) {
	eventType, err := domain.ParseEventType(e.EventType)
	if err != nil {
		return nil, fmt.Errorf("event type %q: %w", e.EventType, err)
	}

	if e.NFT == nil || e.NFT.Identifier == "" {
		return nil, fmt.Errorf("event %q has no token identifier", e.Transaction)
	}
	if e.Transaction == "" {
		return nil, fmt.Errorf("event for token %s has no transaction hash", e.NFT.Identifier)
	}

	from, to := e.FromAddress, e.ToAddress
	if eventType == domain.EventTypeSale {
		if e.Seller != "" {
			from = e.Seller
		}
		if e.Buyer != "" {
			to = e.Buyer
		}
	}

	collection := e.NFT.Collection
	if collection == "" {
		collection = fallbackCollection
	}

	return &domain.TransferEvent{
		Type:       eventType,
		From:       domain.NormalizeAddress(from),
		To:         domain.NormalizeAddress(to),
		Collection: collection,
		Identifier: e.NFT.Identifier,
		TxHash:     strings.ToLower(e.Transaction),
		Timestamp:  e.EventTimestamp,
		Payment:    e.payment(),
	}, nil
}

// payment maps the wire payment onto domain payment terms. Missing or partial
// payment data degrades to the unknown sentinels instead of failing ingestion.
func (e *AssetEvent) payment() domain.Payment {
	if e.Payment == nil {
		return domain.UnknownPayment()
	}

	p := domain.Payment{
		Quantity:     e.Payment.Quantity,
		Symbol:       e.Payment.Symbol,
		Decimals:     e.Payment.Decimals,
		TokenAddress: e.Payment.TokenAddress,
	}
	if p.Quantity == "" {
		p.Quantity = "0"
	}
	if p.Symbol == "" {
		p.Symbol = domain.UNKNOWN_PAYMENT_VALUE
	}
	if p.TokenAddress == "" {
		p.TokenAddress = domain.UNKNOWN_PAYMENT_VALUE
	}
	return p
}

// NormalizeEvents converts a page of raw events into domain transfer events.
// Events that cannot be normalized are logged and skipped, never fatal.
func NormalizeEvents(ctx context.Context, events []AssetEvent, fallbackCollection string) []*domain.TransferEvent {
	normalized := make([]*domain.TransferEvent, 0, len(events))
	for i := range events {
		event, err := events[i].Normalize(fallbackCollection)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping unusable feed event",
				zap.String("event_type", events[i].EventType),
				zap.String("transaction", events[i].Transaction),
				zap.Error(err),
			)
			continue
		}
		normalized = append(normalized, event)
	}
	return normalized
}
