package images

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// New returns the image store selected by cfg.ImageBackend. Local stores are
// rooted at cfg.DataDir.
func New(ctx context.Context, cfg types.Config) (Store, error) {
	switch cfg.ImageBackend {
	case "", types.ImageBackendLocal:
		return NewLocal(cfg.DataDir)
	case types.ImageBackendS3:
		return NewS3(ctx, cfg.ImageBucket, cfg.ImageRegion)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrImageBackendUnknown, cfg.ImageBackend)
	}
}
