package polysolve

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ============================================================
// Tool interface
// ============================================================

// ToolRequest is a named tool invocation with loosely typed parameters, as
// decoded from JSON.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries a tool's structured result, its one-line rendering,
// or an error message.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// EquationParams are the parameters of the solve, reduce and format tools.
type EquationParams struct {
	Equation string `json:"equation" jsonschema:"minLength=3,description=Equation of degree at most 2 such as x^2 - 3x + 2 = 0"`
}

// PrettySqrtParams are the parameters of the pretty_sqrt tool.
type PrettySqrtParams struct {
	N float64 `json:"n" jsonschema:"minimum=0,description=Radicand"`
}

// ReduceResult is the structured result of the reduce tool.
type ReduceResult struct {
	Canonical    string       `json:"canonical"`
	Degree       int          `json:"degree"`
	Coefficients Coefficients `json:"coefficients"`
	Terms        []Term       `json:"terms"`
}

type toolDef struct {
	name        string
	description string
	params      interface{}
}

var toolDefs = []toolDef{
	{"solve", "Solve a polynomial equation of degree at most 2, returning the step trace and roots", &EquationParams{}},
	{"reduce", "Reduce an equation to ax^2+bx+c=0 and return its coefficients", &EquationParams{}},
	{"format", "Render an equation in standard form", &EquationParams{}},
	{"pretty_sqrt", "Square root rendered as an integer when exact, else sqrt(n)", &PrettySqrtParams{}},
	{"tool_spec", "Return this tool schema", &struct{}{}},
}

// ToolNames lists the tools HandleToolCall accepts.
func ToolNames() []string {
	names := make([]string, len(toolDefs))
	for i, d := range toolDefs {
		names[i] = d.name
	}
	return names
}

// HandleToolCall dispatches req to the named tool. Failures are reported in
// ToolResponse.Error, never as a panic.
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case json.Number:
			return n.Float64()
		}
		return 0, fmt.Errorf("param %s must be a number", key)
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "solve":
		eq, err := getString("equation")
		if err != nil {
			return fail(err)
		}
		r, err := Solve(eq)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: r, String: r.Solution.String()}

	case "reduce", "format":
		eq, err := getString("equation")
		if err != nil {
			return fail(err)
		}
		m, err := ParseEquation(eq)
		if err != nil {
			return fail(err)
		}
		canonical := Format(m)
		if req.Tool == "format" {
			return ToolResponse{Result: canonical, String: canonical}
		}
		return ToolResponse{
			Result: ReduceResult{
				Canonical: canonical,
				Degree:    m.Degree(),
				Coefficients: Coefficients{
					A: m.Coefficient(2),
					B: m.Coefficient(1),
					C: m.Coefficient(0),
				},
				Terms: m.Terms(),
			},
			String: canonical,
		}

	case "pretty_sqrt":
		n, err := getNumber("n")
		if err != nil {
			return fail(err)
		}
		if n < 0 {
			return fail(fmt.Errorf("param n must be non-negative"))
		}
		v := PrettySqrt(n)
		return ToolResponse{Result: v.String(), String: v.String()}

	case "tool_spec":
		spec, err := ToolSpec()
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: json.RawMessage(spec)}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %q", req.Tool)}
}

// ToolSpec returns the JSON schema of every tool, suitable for agent
// registration. Input schemas are reflected from the parameter structs.
func ToolSpec() (string, error) {
	return buildToolSpec(toolDefs)
}

func buildToolSpec(defs []toolDef) (string, error) {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	tools := make([]map[string]interface{}, 0, len(defs))
	for _, d := range defs {
		tools = append(tools, map[string]interface{}{
			"name":        d.name,
			"description": d.description,
			"inputSchema": r.Reflect(d.params),
		})
	}
	b, err := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tool spec: %w", err)
	}
	return string(b), nil
}
