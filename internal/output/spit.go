// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"
)

// Spit writes a cached value to w in the requested format. "raw" prints
// strings bare and everything else as compact JSON; "json" and "yaml"
// marshal the value whole.
func Spit(w io.Writer, value any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render json: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to render yaml: %w", err)
		}
		fmt.Fprint(w, string(data))
	case "raw", "":
		if s, ok := value.(string); ok {
			fmt.Fprintln(w, s)
			return nil
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to render value: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// Extract pulls a sub-value out of value by gjson path. The second return
// is false when the path matches nothing.
func Extract(value any, path string) (any, bool) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}
