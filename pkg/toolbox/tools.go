package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"newsgraph/pkg/graph"
	"newsgraph/pkg/logger"
)

// ToolHandler executes a tool call. The arguments parameter is the
// JSON-encoded argument object produced by an AI model.
type ToolHandler func(ctx context.Context, arguments string) (string, error)

// Tool is one catalog operation in the shape a tool-calling LLM client
// consumes: a name, a description, a JSON Schema for the parameters and a
// handler returning rendered text.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     ToolHandler
}

// Tools returns the catalog as LLM-invocable tools. Handlers decode the
// model's JSON arguments, dispatch the operation and render the records as
// compact text.
func (t *Toolbox) Tools() []Tool {
	tools := make([]Tool, 0, operationCount)
	for _, op := range Operations() {
		tools = append(tools, t.tool(op))
	}
	return tools
}

func (t *Toolbox) tool(op Operation) Tool {
	spec := catalog[op]

	properties := map[string]any{}
	required := []string{}
	for _, p := range spec.params {
		properties[p.name] = map[string]any{
			"type":        "string",
			"description": p.description,
		}
		if p.required {
			required = append(required, p.name)
		}
	}

	return Tool{
		Name:        spec.name,
		Description: spec.description,
		Parameters: map[string]any{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
		Handler: func(ctx context.Context, arguments string) (string, error) {
			args, err := decodeArgs(spec.name, arguments)
			if err != nil {
				return "", err
			}

			logger.Debug("[Tool] "+spec.name, "args", args)

			records, err := t.Invoke(ctx, op, args)
			if err != nil {
				return "", err
			}
			return renderRecords(op, records), nil
		},
	}
}

// decodeArgs parses the model's argument object. All catalog parameters are
// strings at this boundary; a non-string value is the model's mistake and
// maps to invalid_argument.
func decodeArgs(op, arguments string) (Args, error) {
	if strings.TrimSpace(arguments) == "" {
		return Args{}, nil
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(arguments), &raw); err != nil {
		return nil, &graph.QueryError{
			Kind: graph.KindInvalidArgument,
			Op:   op,
			Msg:  "arguments are not a valid JSON object",
			Err:  err,
		}
	}
	args := make(Args, len(raw))
	for key, value := range raw {
		str, ok := value.(string)
		if !ok {
			return nil, &graph.QueryError{
				Kind:  graph.KindInvalidArgument,
				Op:    op,
				Param: key,
				Msg:   "parameter must be a string",
			}
		}
		args[key] = str
	}
	return args, nil
}

var renderHeadings = [operationCount]string{
	OpListIndustries:      "Industries",
	OpSearchCompanies:     "Companies",
	OpCompaniesInIndustry: "Companies",
	OpArticlesInMonth:     "Articles",
	OpArticle:             "Article",
	OpCompaniesInArticles: "Mentioned Companies",
	OpPeopleAtCompany:     "People",
}

// renderRecords formats a result set as numbered text for a model to read.
func renderRecords(op Operation, records []Record) string {
	var result strings.Builder
	fmt.Fprintf(&result, "## %s\n", renderHeadings[op])
	if len(records) == 0 {
		result.WriteString("No results.\n")
		return result.String()
	}
	for i, record := range records {
		fmt.Fprintf(&result, "%d. %s\n", i+1, renderRecord(record))
	}
	return result.String()
}

// renderRecord prints fields in a stable order, id and name first.
func renderRecord(record Record) string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fieldRank(keys[i]) < fieldRank(keys[j]) ||
			(fieldRank(keys[i]) == fieldRank(keys[j]) && keys[i] < keys[j])
	})

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", key, record[key]))
	}
	return strings.Join(parts, ", ")
}

func fieldRank(key string) int {
	switch key {
	case "id":
		return 0
	case "name", "title":
		return 1
	default:
		return 2
	}
}
