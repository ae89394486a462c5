// Package settings persists the small amount of local configuration the
// planner keeps outside the relational backend: the content-service API key,
// held in redis under a fixed name, read at startup and written when the
// user saves it.
package settings

import "context"

// APIKeyName is the fixed key the content-service credential lives under.
const APIKeyName = "study_planner:ai_api_key"

type Store interface {
	APIKey(ctx context.Context) (string, error)

	SetAPIKey(ctx context.Context, key string) error
}
