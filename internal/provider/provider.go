package provider

import "context"

// ExternalNotificationProvider delivers a title/content message to one
// third-party backend. Send reports false for deliveries the backend did not
// confirm; the error result is reserved for transport failures.
//
//go:generate mockgen -package mockprovider -destination ./mock/mockprovider.go . ExternalNotificationProvider
type ExternalNotificationProvider interface {
	Name() string
	Send(ctx context.Context, title string, content string) (bool, error)
}
