package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:   "valid json config",
			config: Config{Backend: "json", DataDir: "/tmp/data"},
		},
		{
			name:   "valid sqlite config",
			config: Config{Backend: "sqlite", DataDir: "/tmp/data"},
		},
		{
			name:   "json with empty DataDir is valid at config level",
			config: Config{Backend: "json", DataDir: ""},
		},
		{
			name:   "explicit local image backend",
			config: Config{Backend: "json", ImageBackend: "local"},
		},
		{
			name:    "s3 without bucket returns ErrImageBucketEmpty",
			config:  Config{Backend: "json", ImageBackend: "s3"},
			wantErr: ErrImageBucketEmpty,
		},
		{
			name:   "s3 with bucket",
			config: Config{Backend: "json", ImageBackend: "s3", ImageBucket: "recipes"},
		},
		{
			name:    "unknown image backend",
			config:  Config{Backend: "json", ImageBackend: "ftp"},
			wantErr: ErrImageBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
