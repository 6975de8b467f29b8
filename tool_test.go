package polysolve_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/polysolve"
)

// ============================================================
// Tool interface tests
// ============================================================

func TestHandleToolCall_Solve(t *testing.T) {
	resp := polysolve.HandleToolCall(polysolve.ToolRequest{
		Tool:   "solve",
		Params: map[string]interface{}{"equation": "x^2 - 3x + 2 = 0"},
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "x1=2, x2=1", resp.String)

	b, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var got struct {
		Canonical string `json:"canonical"`
		Solution  struct {
			Case  string `json:"case"`
			Roots []struct {
				Exact string  `json:"exact"`
				Re    float64 `json:"re"`
			} `json:"roots"`
		} `json:"solution"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "x^2-3x^1+2=0", got.Canonical)
	assert.Equal(t, "quadratic_two_real", got.Solution.Case)
	require.Len(t, got.Solution.Roots, 2)
	assert.Equal(t, "2", got.Solution.Roots[0].Exact)
	assert.Equal(t, 1.0, got.Solution.Roots[1].Re)
}

func TestHandleToolCall_Reduce(t *testing.T) {
	resp := polysolve.HandleToolCall(polysolve.ToolRequest{
		Tool:   "reduce",
		Params: map[string]interface{}{"equation": "x^2 = 2x + 3"},
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "x^2-2x^1-3=0", resp.String)

	rr, ok := resp.Result.(polysolve.ReduceResult)
	require.True(t, ok)
	assert.Equal(t, 2, rr.Degree)
	assert.Equal(t, polysolve.Coefficients{A: 1, B: -2, C: -3}, rr.Coefficients)
	require.Len(t, rr.Terms, 3)
	assert.Equal(t, 2, rr.Terms[0].Exponent)
}

func TestHandleToolCall_Format(t *testing.T) {
	resp := polysolve.HandleToolCall(polysolve.ToolRequest{
		Tool:   "format",
		Params: map[string]interface{}{"equation": "3 = x"},
	})
	require.Empty(t, resp.Error)
	assert.Equal(t, "-x^1+3=0", resp.String)
}

func TestHandleToolCall_PrettySqrt(t *testing.T) {
	resp := polysolve.HandleToolCall(polysolve.ToolRequest{
		Tool:   "pretty_sqrt",
		Params: map[string]interface{}{"n": float64(9)},
	})
	assert.Equal(t, "3", resp.String)

	resp = polysolve.HandleToolCall(polysolve.ToolRequest{
		Tool:   "pretty_sqrt",
		Params: map[string]interface{}{"n": float64(-1)},
	})
	assert.NotEmpty(t, resp.Error)
}

func TestHandleToolCall_Errors(t *testing.T) {
	cases := []struct {
		name string
		req  polysolve.ToolRequest
		want string
	}{
		{"UnknownTool", polysolve.ToolRequest{Tool: "integrate"}, "unknown tool"},
		{"MissingParam", polysolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{}}, "missing param: equation"},
		{"WrongType", polysolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"equation": 4.0}}, "must be a string"},
		{"BadEquation", polysolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"equation": "x^2"}}, "must contain"},
		{"NumberAsString", polysolve.ToolRequest{Tool: "pretty_sqrt", Params: map[string]interface{}{"n": "4"}}, "must be a number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := polysolve.HandleToolCall(tc.req)
			assert.Contains(t, resp.Error, tc.want)
			assert.Nil(t, resp.Result)
		})
	}
}

func TestToolSpec(t *testing.T) {
	spec, err := polysolve.ToolSpec()
	require.NoError(t, err)

	var parsed struct {
		Tools []struct {
			Name        string                 `json:"name"`
			Description string                 `json:"description"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(spec), &parsed))
	require.Len(t, parsed.Tools, len(polysolve.ToolNames()))

	for i, name := range polysolve.ToolNames() {
		assert.Equal(t, name, parsed.Tools[i].Name)
		assert.NotEmpty(t, parsed.Tools[i].Description)
	}

	solve := parsed.Tools[0].InputSchema
	assert.Equal(t, "object", solve["type"])
	props, ok := solve["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "equation")
	assert.True(t, strings.Contains(spec, `"equation"`))
}

func TestHandleToolCall_ToolSpec(t *testing.T) {
	resp := polysolve.HandleToolCall(polysolve.ToolRequest{Tool: "tool_spec"})
	require.Empty(t, resp.Error)
	b, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pretty_sqrt"`)
}
