package loganalyzer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// WriteJSON writes the summary to w as indented JSON. If query is not empty,
// it is run as a jq program against that JSON instead, and each result is
// written on its own line in compact form. Invalid queries and runtime query
// errors are returned.
func (sum Summary) WriteJSON(w io.Writer, query string) error {
	if query == "" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("parsing query %q: %w", query, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return fmt.Errorf("compiling query %q: %w", query, err)
	}
	input, err := sum.jqInput()
	if err != nil {
		return err
	}
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("running query %q: %w", query, err)
		}
		result, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(result)); err != nil {
			return err
		}
	}
}

// jqInput converts the summary to the plain maps and slices gojq operates on.
func (sum Summary) jqInput() (any, error) {
	data, err := json.Marshal(sum)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}
	return input, nil
}
