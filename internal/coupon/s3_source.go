package coupon

import (
	"context"
	"fmt"

	"salon-admin/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectGetter is the subset of the S3 client used by s3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Source implements Source for a gzipped coupon snapshot stored in AWS S3.
type s3Source struct {
	client objectGetter
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates a Source reading the snapshot object at bucket/key.
func NewS3Source(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "coupon-s3-source").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("key", key).
		Msg("S3 coupon source initialised")

	return newS3Source(s3.NewFromConfig(cfg), bucket, key, logger), nil
}

func newS3Source(client objectGetter, bucket, key string, logger zerolog.Logger) *s3Source {
	return &s3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load reads the snapshot object and returns its active coupons ordered by code.
func (s *s3Source) Load(ctx context.Context) ([]model.Coupon, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Msg("loading coupon snapshot from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	coupons, err := readSnapshot(ctx, result.Body)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to read coupon snapshot from S3")
		return nil, fmt.Errorf("failed to read coupon snapshot from S3 %s: %w", s.key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Int("coupons_loaded", len(coupons)).
		Msg("coupon snapshot loaded successfully from S3")

	return coupons, nil
}

// fallbackSource tries a primary source first, then a secondary one.
type fallbackSource struct {
	primary   Source
	secondary Source
	logger    zerolog.Logger
}

// NewFallbackSource creates a Source that loads from primary and falls back to secondary
// when primary fails. A nil primary always uses secondary.
func NewFallbackSource(primary, secondary Source, logger zerolog.Logger) Source {
	return &fallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "coupon-fallback-source").Logger(),
	}
}

// Load attempts the primary source and falls back to the secondary on error.
func (s *fallbackSource) Load(ctx context.Context) ([]model.Coupon, error) {
	if s.primary != nil {
		coupons, err := s.primary.Load(ctx)
		if err == nil {
			return coupons, nil
		}

		s.logger.Warn().
			Err(err).
			Msg("failed to load coupons from primary source, falling back")
	}

	return s.secondary.Load(ctx)
}
