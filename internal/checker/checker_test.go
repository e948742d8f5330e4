package checker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker/mocks"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func rawValues(t *testing.T, values ...any) []json.RawMessage {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal %v: %v", v, err)
		}
		raw = append(raw, b)
	}
	return raw
}

func TestChecker_Check(t *testing.T) {
	checker := NewChecker(JSONDecoder{}, ScanDetector{}, 0, newTestLogger())

	tests := []struct {
		name          string
		values        []any
		wantDuplicate bool
		wantIndex     int
	}{
		{name: "sample input", values: []any{1, 2, 3, 4, 1}, wantDuplicate: true, wantIndex: 4},
		{name: "all distinct", values: []any{1, 2, 3, 4, 5}, wantDuplicate: false, wantIndex: -1},
		{name: "empty", values: []any{}, wantDuplicate: false, wantIndex: -1},
		{name: "pair", values: []any{7, 7}, wantDuplicate: true, wantIndex: 1},
		{name: "negative", values: []any{-1, 0, 1, -1}, wantDuplicate: true, wantIndex: 3},
		{name: "number and string differ", values: []any{1, "1"}, wantDuplicate: false, wantIndex: -1},
		{name: "float repeats", values: []any{1, 2.5, 2.5}, wantDuplicate: true, wantIndex: 2},
		{name: "null repeats", values: []any{nil, true, nil}, wantDuplicate: true, wantIndex: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.CheckRequest{RequestID: "req-1", Values: rawValues(t, tt.values...)}

			result, err := checker.Check(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.ID != "req-1" {
				t.Errorf("expected ID req-1, got %s", result.ID)
			}
			if result.HasDuplicate != tt.wantDuplicate {
				t.Errorf("HasDuplicate = %v, want %v", result.HasDuplicate, tt.wantDuplicate)
			}
			if result.FirstRepeatIndex != tt.wantIndex {
				t.Errorf("FirstRepeatIndex = %d, want %d", result.FirstRepeatIndex, tt.wantIndex)
			}
			if result.Length != len(tt.values) {
				t.Errorf("Length = %d, want %d", result.Length, len(tt.values))
			}
		})
	}
}

func TestChecker_Check_GeneratesID(t *testing.T) {
	checker := NewChecker(JSONDecoder{}, ScanDetector{}, 0, newTestLogger())

	result, err := checker.Check(context.Background(), models.CheckRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestChecker_Check_UnsupportedValue(t *testing.T) {
	checker := NewChecker(JSONDecoder{}, ScanDetector{}, 0, newTestLogger())

	req := models.CheckRequest{Values: []json.RawMessage{json.RawMessage(`1`), json.RawMessage(`{"a":1}`)}}

	_, err := checker.Check(context.Background(), req)
	if !errors.Is(err, models.ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestChecker_Check_TooManyValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecoder := mocks.NewMockDecoder(ctrl)
	mockDetector := mocks.NewMockDetector(ctrl)
	// Neither collaborator may be called once the limit is exceeded
	checker := NewChecker(mockDecoder, mockDetector, 2, newTestLogger())

	_, err := checker.Check(context.Background(), models.CheckRequest{Values: rawValues(t, 1, 2, 3)})
	if !errors.Is(err, models.ErrTooManyValues) {
		t.Fatalf("expected ErrTooManyValues, got %v", err)
	}
}

func TestChecker_Check_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := NewChecker(mocks.NewMockDecoder(ctrl), mocks.NewMockDetector(ctrl), 0, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.Check(ctx, models.CheckRequest{Values: rawValues(t, 1, 1)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChecker_Check_UsesCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecoder := mocks.NewMockDecoder(ctrl)
	mockDetector := mocks.NewMockDetector(ctrl)

	raw := rawValues(t, "a", "b", "a")
	decoded := []models.Value{models.String("a"), models.String("b"), models.String("a")}

	mockDecoder.EXPECT().Decode(raw).Return(decoded, nil)
	mockDetector.EXPECT().FirstDuplicate(decoded).Return(2, true)

	checker := NewChecker(mockDecoder, mockDetector, 10, newTestLogger())

	result, err := checker.Check(context.Background(), models.CheckRequest{RequestID: "mocked", Values: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasDuplicate || result.FirstRepeatIndex != 2 {
		t.Errorf("expected duplicate at index 2, got %+v", result)
	}
}

func TestChecker_Check_DecoderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecoder := mocks.NewMockDecoder(ctrl)
	mockDetector := mocks.NewMockDetector(ctrl)

	decodeErr := errors.New("boom")
	mockDecoder.EXPECT().Decode(gomock.Any()).Return(nil, decodeErr)

	checker := NewChecker(mockDecoder, mockDetector, 0, newTestLogger())

	result, err := checker.Check(context.Background(), models.CheckRequest{RequestID: "bad", Values: rawValues(t, 1)})
	if !errors.Is(err, decodeErr) {
		t.Fatalf("expected decoder error, got %v", err)
	}
	if result.HasDuplicate {
		t.Error("expected no duplicate on error")
	}
}
