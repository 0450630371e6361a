package launch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Renderer turns a structured ToolCall into a target-format snippet.
// The payload stays structured until the last moment so renderers are
// swappable; no target syntax is baked into the checklist builder.
type Renderer interface {
	Render(ToolCall) (string, error)
}

// JSONRenderer emits the payload as pretty-printed JSON, suitable for
// pasting into an MCP client or HTTP body.
type JSONRenderer struct{}

func (JSONRenderer) Render(c ToolCall) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", c.Tool, err)
	}
	return string(data), nil
}

// ShellRenderer emits a CLI-style invocation for a hypothetical
// `growth-tools` wrapper binary. Params are flag-sorted for
// deterministic output.
type ShellRenderer struct{}

func (ShellRenderer) Render(c ToolCall) (string, error) {
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("growth-tools call ")
	sb.WriteString(c.Tool)
	for _, k := range keys {
		v, err := flagValue(c.Params[k])
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", c.Tool, err)
		}
		fmt.Fprintf(&sb, " \\\n  --%s=%s", k, v)
	}
	return sb.String(), nil
}

func flagValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val), nil
	case float64, int:
		return fmt.Sprintf("%v", val), nil
	default:
		// Nested objects go through compact JSON.
		data, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", string(data)), nil
	}
}

// RenderChecklist renders every automatable item's payload with the
// given renderer, keyed by task name.
func RenderChecklist(c Checklist, r Renderer) (map[string]string, error) {
	out := map[string]string{}
	for _, phase := range c.Phases {
		for _, item := range phase.Items {
			if item.Call == nil {
				continue
			}
			snippet, err := r.Render(*item.Call)
			if err != nil {
				return nil, err
			}
			out[item.Task] = snippet
		}
	}
	return out, nil
}
