package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
)

const ToolName = "check_duplicates"

// CheckInput is the MCP tool input schema (matches HTTP API field names).
type CheckInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier"`
	Values    []any  `json:"values" jsonschema:"ordered sequence of numbers, strings, booleans or nulls"`
}

// CheckOutput is the MCP tool output schema.
type CheckOutput struct {
	ID               string `json:"id" jsonschema:"request identifier"`
	HasDuplicate     bool   `json:"has_duplicate" jsonschema:"true when some value occurs more than once"`
	FirstRepeatIndex int    `json:"first_repeat_index" jsonschema:"index of the first repeated value, -1 when none"`
	Length           int    `json:"length" jsonschema:"number of values checked"`
}

// NewCheckHandler returns a tool handler that uses the given checker.
// Pass the returned function to mcp.AddTool.
func NewCheckHandler(c *checker.Checker) func(context.Context, *mcp.CallToolRequest, CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		return CheckDuplicates(ctx, c, req, input)
	}
}

// CheckDuplicates runs the duplicate check and returns the result.
func CheckDuplicates(
	ctx context.Context,
	c *checker.Checker,
	req *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	raw := make([]json.RawMessage, 0, len(input.Values))
	for i, v := range input.Values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, CheckOutput{}, fmt.Errorf("values[%d]: %w", i, err)
		}
		raw = append(raw, b)
	}

	result, err := c.Check(ctx, models.CheckRequest{
		RequestID: input.RequestID,
		Values:    raw,
	})
	if err != nil {
		return nil, CheckOutput{}, err
	}

	return nil, CheckOutput{
		ID:               result.ID,
		HasDuplicate:     result.HasDuplicate,
		FirstRepeatIndex: result.FirstRepeatIndex,
		Length:           result.Length,
	}, nil
}

// NewServer builds an MCP server exposing the duplicate check tool
func NewServer(c *checker.Checker, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "dupcheck",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Report whether an ordered sequence of scalar values contains any value more than once, and the index of the first repeat",
	}, NewCheckHandler(c))

	return server
}
