package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bitwise/internal/config"
	"bitwise/internal/eval"
)

// WriteResponse prints resp to w in the given format. Text output is one
// line per result: the value, the pair separated by a space, true/false,
// or one bracketed subset per line.
func WriteResponse(w io.Writer, resp eval.Response, format string) error {
	if format == config.OutputJSON {
		return json.NewEncoder(w).Encode(resp)
	}

	var err error
	switch {
	case resp.Error != "":
		_, err = fmt.Fprintf(w, "error: %s\n", resp.Error)
	case resp.Value != nil:
		_, err = fmt.Fprintf(w, "%d\n", *resp.Value)
	case resp.Bool != nil:
		_, err = fmt.Fprintf(w, "%t\n", *resp.Bool)
	case resp.Pair != nil:
		_, err = fmt.Fprintf(w, "%d %d\n", resp.Pair[0], resp.Pair[1])
	default:
		var sb strings.Builder
		for _, subset := range resp.Subsets {
			fmt.Fprintf(&sb, "%v\n", subset)
		}
		_, err = io.WriteString(w, sb.String())
	}
	return err
}

// WriteOps prints the operation names one per line.
func WriteOps(w io.Writer, ops []string) error {
	_, err := io.WriteString(w, strings.Join(ops, "\n")+"\n")
	return err
}
