package types

import "errors"

// Config holds backend selection and parameters for opening a Store and
// an image store.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`

	ImageBackend string `json:"image_backend" yaml:"image_backend"`
	ImageBucket  string `json:"image_bucket,omitempty" yaml:"image_bucket,omitempty"`
	ImageRegion  string `json:"image_region,omitempty" yaml:"image_region,omitempty"`
}

// Supported record store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Supported image store backends.
const (
	ImageBackendLocal = "local"
	ImageBackendS3    = "s3"
)

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrImageBackendUnknown = errors.New("unknown image backend")
	ErrImageBucketEmpty    = errors.New("image bucket must not be empty for s3")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty ImageBackend means local.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	switch c.ImageBackend {
	case "", ImageBackendLocal:
	case ImageBackendS3:
		if c.ImageBucket == "" {
			return ErrImageBucketEmpty
		}
	default:
		return ErrImageBackendUnknown
	}
	return nil
}
