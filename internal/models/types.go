package models

import (
	"encoding/json"
	"time"
)

// Input message

type CheckRequest struct {
	RequestID string            `json:"request_id,omitempty" description:"Optional request identifier, generated when empty"`
	Values    []json.RawMessage `json:"values" description:"Ordered sequence of JSON scalars (numbers, strings, booleans, null)"`
}

// Final output returned over HTTP, MCP and the results stream
type CheckResult struct {
	ID               string        `json:"id" description:"Request identifier"`
	HasDuplicate     bool          `json:"has_duplicate" description:"True when some value occurs more than once"`
	FirstRepeatIndex int           `json:"first_repeat_index" description:"Index of the first repeated value, -1 when none"`
	Length           int           `json:"length" description:"Number of values checked"`
	Duration         time.Duration `json:"duration_ns" description:"Time spent checking"`
	CheckedAt        time.Time     `json:"checked_at" description:"Time when the check completed"`
}
