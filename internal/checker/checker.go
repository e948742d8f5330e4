package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/duplicates"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=checker.go -destination=mocks/mocks.go -package=mocks

// Decoder turns raw JSON elements into comparable values
type Decoder interface {
	Decode(raw []json.RawMessage) ([]models.Value, error)
}

// Detector finds the first repeated value in a sequence
type Detector interface {
	FirstDuplicate(values []models.Value) (int, bool)
}

type JSONDecoder struct{}

func (JSONDecoder) Decode(raw []json.RawMessage) ([]models.Value, error) {
	values := make([]models.Value, 0, len(raw))
	for i, r := range raw {
		v, err := models.ParseValue(r)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

type ScanDetector struct{}

func (ScanDetector) FirstDuplicate(values []models.Value) (int, bool) {
	return duplicates.FirstDuplicate(values)
}

type Checker struct {
	decoder   Decoder
	detector  Detector
	maxValues int
	logger    *zerolog.Logger
}

// NewChecker wires a checker. A maxValues of zero or less disables the limit.
func NewChecker(decoder Decoder, detector Detector, maxValues int, logger *zerolog.Logger) *Checker {
	return &Checker{
		decoder:   decoder,
		detector:  detector,
		maxValues: maxValues,
		logger:    logger,
	}
}

func (c *Checker) Check(ctx context.Context, req models.CheckRequest) (models.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return models.CheckResult{}, err
	}

	id := req.RequestID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	result := models.CheckResult{
		ID:               id,
		FirstRepeatIndex: -1,
		Length:           len(req.Values),
	}

	if c.maxValues > 0 && len(req.Values) > c.maxValues {
		return result, fmt.Errorf("%w: got %d, limit is %d", models.ErrTooManyValues, len(req.Values), c.maxValues)
	}

	start := time.Now()

	values, err := c.decoder.Decode(req.Values)
	if err != nil {
		c.logger.Warn().Err(err).Str("requestID", id).Msg("rejected values")
		return result, err
	}

	index, found := c.detector.FirstDuplicate(values)

	result.HasDuplicate = found
	result.FirstRepeatIndex = index
	result.Duration = time.Since(start)
	result.CheckedAt = time.Now()

	c.logger.Info().
		Str("requestID", id).
		Int("length", result.Length).
		Bool("hasDuplicate", found).
		Int("firstRepeatIndex", index).
		Dur("duration", result.Duration).
		Msg("check complete")

	return result, nil
}
