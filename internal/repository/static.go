package repository

import "context"

var _ ConfigurationProvider = StaticConfiguration(nil)

// StaticConfiguration serves values from memory, for one-shot tools that take
// their settings from flags.
type StaticConfiguration map[string]string

func (s StaticConfiguration) GetValue(_ context.Context, key string, defaultValue string) string {
	if value, ok := s[key]; ok {
		return value
	}
	return defaultValue
}
