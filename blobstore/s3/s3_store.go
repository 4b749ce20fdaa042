package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/storageclient/blobstore"
)

// Store implements blobstore.Store for S3. Containers map to buckets.
type Store struct {
	client   Client
	uploader *manager.Uploader
}

// NewStore creates a new S3 store on top of an existing client.
func NewStore(client Client, cfg UploadConfig) *Store {
	return &Store{
		client:   client,
		uploader: newUploader(client, cfg),
	}
}

// Options configures New.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	Upload          UploadConfig
}

// New loads the AWS configuration and creates a Store.
//
// Without static credentials the default AWS credentials chain is used.
func New(ctx context.Context, optFns ...func(*Options)) (*Store, error) {
	opts := Options{Upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&opts)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		creds := aws.Credentials{
			AccessKeyID:     opts.AccessKeyID,
			SecretAccessKey: opts.SecretAccessKey,
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return creds, nil
		})))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(opts.Endpoint)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = opts.UsePathStyle
	})

	return NewStore(client, opts.Upload), nil
}

// ContainerExists reports whether the bucket exists.
func (s *Store) ContainerExists(ctx context.Context, container string) (bool, error) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(container),
	})
	if err != nil {
		if isNotFound(translateError(err)) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Exists reports whether the object exists.
func (s *Store) Exists(ctx context.Context, container, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(translateError(err)) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Download reads the whole object.
func (s *Store) Download(ctx context.Context, container, key string) (*blobstore.Object, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, translateError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &blobstore.Object{
		Data:        data,
		ContentType: aws.ToString(resp.ContentType),
	}, nil
}

// Delete removes an object.
func (s *Store) Delete(ctx context.Context, container, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
	})
	if err != nil {
		err = translateError(err)
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil // Already gone
		}
		return err
	}
	return nil
}

// Upload writes an object through the multipart-capable uploader.
func (s *Store) Upload(ctx context.Context, container, key string, r io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return translateError(err)
	}
	return nil
}
