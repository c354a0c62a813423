package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of *s3.Client the S3 store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3 stores images as objects keyed "images/<name>" in one bucket.
type S3 struct {
	client s3API
	bucket string
}

var _ Store = (*S3)(nil)

// NewS3 builds an S3 store using the default AWS credential chain.
// An empty region defers to AWS_REGION and the shared config.
func NewS3(ctx context.Context, bucket, region string) (*S3, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &S3{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Save uploads r as images/<name>. The body is buffered so the SDK can sign
// a seekable payload.
func (s *S3) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	key := StoredPath(name)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return key, nil
}

// Open downloads the object at stored.
func (s *S3) Open(ctx context.Context, stored string) (io.ReadCloser, error) {
	if stored == "" {
		return nil, ErrNoImage
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(stored),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNoImage
		}
		return nil, fmt.Errorf("downloading %s: %w", stored, err)
	}
	return out.Body, nil
}

// Check confirms the object exists.
func (s *S3) Check(ctx context.Context, stored string) error {
	if stored == "" {
		return ErrNoImage
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(stored),
	})
	if err != nil {
		if isNotFound(err) {
			return ErrNoImage
		}
		return fmt.Errorf("checking %s: %w", stored, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf *s3types.NotFound
	var nsk *s3types.NoSuchKey
	return errors.As(err, &nf) || errors.As(err, &nsk)
}
