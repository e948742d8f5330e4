package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
	"github.com/redis/go-redis/v9"
)

const payloadField = "payload"

var ErrMissingPayload = errors.New("missing payload field")

func decodeRequest(msg redis.XMessage) (models.CheckRequest, error) {
	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		return models.CheckRequest{}, ErrMissingPayload
	}

	var req models.CheckRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return models.CheckRequest{}, fmt.Errorf("failed to decode message %s: %w", msg.ID, err)
	}

	// Stream messages without their own ID are tracked by the stream entry ID
	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	return req, nil
}

func encodePayload(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return map[string]any{payloadField: string(data)}, nil
}
