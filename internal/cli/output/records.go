package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mpyw/cfnctl/internal/cli/colors"
	"github.com/mpyw/cfnctl/internal/timeutil"
)

// metadataKey is the SDK's per-response middleware metadata. It never
// carries user data, so it is dropped from rendered records.
const metadataKey = "ResultMetadata"

// ErrColumnsUnsupported is returned when Columns is combined with a
// structured format.
var ErrColumnsUnsupported = errors.New("--columns only applies to text and table output")

// RecordWriter renders selected values to Out in the configured Format.
//
// A value that encodes to a JSON array is flattened: every element is
// rendered as its own item, so pages of a list operation read as one
// continuous listing. Empty pages contribute nothing. Columns restricts text and table output to the named
// fields; dotted paths reach into nested objects (e.g. "Outputs.0.OutputValue").
//
// Write may be called any number of times; Flush must be called once at the end.
type RecordWriter struct {
	Out     io.Writer
	Err     io.Writer
	Format  Format
	Columns []string

	items int
	yaml  *yaml.Encoder
	table *tablewriter.Table
}

// Validate checks that the writer's settings are consistent.
func (w *RecordWriter) Validate() error {
	if len(w.Columns) > 0 && !w.Format.Columnar() {
		return ErrColumnsUnsupported
	}

	return nil
}

// Write renders v. A nil value, such as the unset item list of an empty
// page, renders nothing.
func (w *RecordWriter) Write(v any) error {
	normalized, err := normalize(v)
	if err != nil {
		return err
	}

	if normalized == nil {
		return nil
	}

	items, ok := normalized.([]any)
	if !ok {
		items = []any{normalized}
	}

	for _, item := range items {
		if err := w.writeItem(item); err != nil {
			return err
		}

		w.items++
	}

	return nil
}

// Flush finishes any buffered output.
func (w *RecordWriter) Flush() error {
	switch {
	case w.yaml != nil:
		return w.yaml.Close()
	case w.table != nil:
		return w.table.Render()
	default:
		return nil
	}
}

// Items returns the number of items rendered so far.
func (w *RecordWriter) Items() int {
	return w.items
}

// More tells the user how to fetch the page after next.
func (w *RecordWriter) More(next string) {
	if w.Err == nil || next == "" {
		return
	}

	Hint(w.Err, "more results available; resume with --next-token %s", next)
}

func (w *RecordWriter) writeItem(item any) error {
	switch w.Format {
	case FormatYAML:
		return w.writeYAML(item)
	case FormatText:
		return w.writeText(item)
	case FormatTable:
		return w.writeTable(item)
	default:
		return w.writeJSON(item)
	}
}

func (w *RecordWriter) writeJSON(item any) error {
	enc := json.NewEncoder(w.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(item)
}

func (w *RecordWriter) writeYAML(item any) error {
	if w.yaml == nil {
		w.yaml = yaml.NewEncoder(w.Out)
		w.yaml.SetIndent(2)
	}

	return w.yaml.Encode(item)
}

func (w *RecordWriter) writeText(item any) error {
	obj, ok := item.(map[string]any)
	if !ok {
		if item == nil {
			return nil
		}

		s := scalar("", item)
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}

		_, err := io.WriteString(w.Out, s)

		return err
	}

	if len(w.Columns) > 0 {
		_, err := fmt.Fprintln(w.Out, strings.Join(w.row(obj), "\t"))

		return err
	}

	if w.items > 0 {
		New(w.Out).Separator()
	}

	out := New(w.Out)
	for _, key := range sortedKeys(obj) {
		out.Field(key, scalar(key, obj[key]))
	}

	return nil
}

func (w *RecordWriter) writeTable(item any) error {
	obj, ok := item.(map[string]any)
	if !ok {
		obj = map[string]any{"Value": item}
	}

	if w.table == nil {
		if len(w.Columns) == 0 {
			w.Columns = lo.Filter(sortedKeys(obj), func(key string, _ int) bool {
				return isScalar(obj[key])
			})
		}

		w.table = tablewriter.NewWriter(w.Out)
		w.table.Header(lo.ToAnySlice(w.Columns)...)
	}

	return w.table.Append(w.row(obj))
}

func (w *RecordWriter) row(obj map[string]any) []string {
	return lo.Map(w.Columns, func(col string, _ int) string {
		v, _ := lookup(obj, col)

		return scalar(lastSegment(col), v)
	})
}

// normalize converts v into plain JSON values so that every format renders
// the same field names the API documents. Unset fields are omitted.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	if obj, ok := out.(map[string]any); ok {
		delete(obj, metadataKey)
	}

	return prune(out), nil
}

// prune drops null object members left behind by unset optional fields.
func prune(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			if child == nil {
				delete(node, key)

				continue
			}

			node[key] = prune(child)
		}
	case []any:
		for i, child := range node {
			node[i] = prune(child)
		}
	}

	return v
}

// lookup resolves a dotted path. Numeric segments index into arrays.
func lookup(v any, path string) (any, bool) {
	for seg := range strings.SplitSeq(path, ".") {
		switch node := v.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}

			v = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}

			v = node[i]
		default:
			return nil, false
		}
	}

	return v, true
}

// scalar formats v for text and table cells. key is the field name and
// drives timestamp and status decoration.
func scalar(key string, v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if ts, ok := timeutil.Reformat(val); ok {
			return ts
		}

		if strings.HasSuffix(key, "Status") {
			return colorStatus(val)
		}

		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}

		return string(data)
	}
}

func colorStatus(status string) string {
	switch {
	case strings.HasSuffix(status, "_FAILED") || strings.Contains(status, "ROLLBACK"):
		return colors.StatusFailed(status)
	case strings.HasSuffix(status, "_COMPLETE"):
		return colors.StatusComplete(status)
	case strings.HasSuffix(status, "_IN_PROGRESS"):
		return colors.Status(status)
	default:
		return status
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}

func sortedKeys(obj map[string]any) []string {
	keys := lo.Keys(obj)
	slices.Sort(keys)

	return keys
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}

	return path
}
