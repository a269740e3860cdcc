package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"salon-admin/internal/model"

	"github.com/rs/zerolog"
)

// fileSource implements Source for a gzipped coupon snapshot on local disk.
// The snapshot holds one JSON-encoded coupon per line.
type fileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a Source reading the snapshot at path.
func NewFileSource(path string, logger zerolog.Logger) Source {
	return &fileSource{
		path:   path,
		logger: logger.With().Str("component", "coupon-file-source").Logger(),
	}
}

// Load reads the snapshot and returns its active coupons ordered by code.
func (s *fileSource) Load(ctx context.Context) ([]model.Coupon, error) {
	s.logger.Info().Str("file", s.path).Msg("loading coupon snapshot")

	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to open coupon snapshot")
		return nil, fmt.Errorf("failed to open coupon snapshot %s: %w", s.path, err)
	}
	defer file.Close()

	coupons, err := readSnapshot(ctx, file)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read coupon snapshot")
		return nil, fmt.Errorf("failed to read coupon snapshot %s: %w", s.path, err)
	}

	s.logger.Info().
		Str("file", s.path).
		Int("coupons_loaded", len(coupons)).
		Msg("coupon snapshot loaded successfully")

	return coupons, nil
}

// readSnapshot decodes a gzipped JSON-lines coupon snapshot.
func readSnapshot(ctx context.Context, r io.Reader) ([]model.Coupon, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var coupons []model.Coupon
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var c model.Coupon
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if c.Code == "" {
			return nil, fmt.Errorf("line %d: coupon code is required", lineNo)
		}
		if !c.DiscountType.Valid() {
			return nil, fmt.Errorf("line %d: invalid discount type %q", lineNo, c.DiscountType)
		}
		coupons = append(coupons, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning snapshot: %w", err)
	}

	return activeByCode(coupons), nil
}

// WriteSnapshot writes coupons to w in the snapshot format read by the file and S3 sources.
func WriteSnapshot(w io.Writer, coupons []model.Coupon) error {
	gzipWriter := gzip.NewWriter(w)
	enc := json.NewEncoder(gzipWriter)
	for _, c := range coupons {
		if err := enc.Encode(c); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to encode coupon %s: %w", c.Code, err)
		}
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish snapshot: %w", err)
	}
	return nil
}
