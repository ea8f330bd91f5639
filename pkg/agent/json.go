package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeModelJSON extracts and decodes the JSON object from a model
// completion. Models wrap JSON in markdown fences or preamble text often
// enough that a plain Unmarshal is not good enough: the decoder strips
// fences and cuts from the first '{' to the last '}' before parsing.
func decodeModelJSON(content string, out any) error {
	cleaned := strings.TrimSpace(content)
	if after, ok := strings.CutPrefix(cleaned, "```json"); ok {
		cleaned = after
	} else if after, ok := strings.CutPrefix(cleaned, "```"); ok {
		cleaned = after
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in model output (%d chars)", len(content))
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err != nil {
		return fmt.Errorf("decoding model JSON: %w", err)
	}
	return nil
}
