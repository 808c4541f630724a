package plugin

import (
	"context"
)

// BackendPlugin is implemented by external colour scheme backends.
type BackendPlugin interface {
	// FromImage derives light and dark schemes from an image.
	FromImage(ctx context.Context, req ImageRequest) (SchemePair, error)

	// FromColor derives light and dark schemes from a seed colour.
	FromColor(ctx context.Context, req ColorRequest) (SchemePair, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
