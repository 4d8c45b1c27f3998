package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

var timeType = reflect.TypeOf(time.Time{})

// TableFormatter formats data as an aligned text table.
//
// Supported inputs: *Table, Table, slices of structs or scalars, maps and
// single structs. Anything else is printed as JSON.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool

	// Now is the reference instant for age columns. Nil means time.Now.
	Now func() time.Time
}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch t := data.(type) {
	case *Table:
		return t.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return t.RenderWithOptions(w, f.NoHeaders)
	}

	table, ok := f.toTable(reflect.ValueOf(data))
	if !ok {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}
	return table.RenderWithOptions(w, f.NoHeaders)
}

func (f *TableFormatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *TableFormatter) toTable(v reflect.Value) (*Table, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return &Table{}, true
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return f.sliceTable(v), true
	case reflect.Map:
		return f.mapTable(v), true
	case reflect.Struct:
		return f.structTable(v), true
	default:
		return nil, false
	}
}

// sliceTable renders one row per element.
func (f *TableFormatter) sliceTable(v reflect.Value) *Table {
	if v.Len() == 0 {
		return &Table{}
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct || elemType == timeType {
		table := &Table{Headers: []string{"VALUE"}}
		for i := 0; i < v.Len(); i++ {
			table.AddRow(f.cell(v.Index(i), tagOptions{}))
		}
		return table
	}

	cols := columns(elemType, f.Wide)
	table := &Table{}
	for _, c := range cols {
		table.Headers = append(table.Headers, strings.ToUpper(toSnakeCase(c.name)))
	}
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i))
		row := make([]string, len(cols))
		if elem.IsValid() {
			for j, c := range cols {
				row[j] = f.cell(elem.Field(c.index), c.opts)
			}
		}
		table.AddRow(row...)
	}
	return table
}

// mapTable renders a key/value table sorted by key.
func (f *TableFormatter) mapTable(v reflect.Value) *Table {
	table := &Table{Headers: []string{"KEY", "VALUE"}}
	iter := v.MapRange()
	for iter.Next() {
		table.AddRow(f.cell(iter.Key(), tagOptions{}), f.cell(iter.Value(), tagOptions{}))
	}
	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i][0] < table.Rows[j][0]
	})
	return table
}

// structTable renders a single struct as field/value rows. Wide-only
// fields are always shown.
func (f *TableFormatter) structTable(v reflect.Value) *Table {
	table := &Table{Headers: []string{"FIELD", "VALUE"}}
	for _, c := range columns(v.Type(), true) {
		table.AddRow(c.name, f.cell(v.Field(c.index), c.opts))
	}
	return table
}

func (f *TableFormatter) cell(v reflect.Value, opts tagOptions) string {
	switch {
	case opts.bytes:
		if n, ok := integer(indirect(v)); ok {
			return humanize.IBytes(n)
		}
	case opts.age:
		if iv := indirect(v); iv.IsValid() && iv.Type() == timeType {
			if t := iv.Interface().(time.Time); !t.IsZero() {
				return humanize.RelTime(t, f.now(), "ago", "from now")
			}
		}
	}
	return formatValue(v)
}

type tagOptions struct {
	skip  bool
	wide  bool
	bytes bool
	age   bool
}

func parseTag(tag string) tagOptions {
	var o tagOptions
	for _, part := range strings.Split(tag, ",") {
		switch strings.TrimSpace(part) {
		case "-":
			o.skip = true
		case "wide":
			o.wide = true
		case "bytes":
			o.bytes = true
		case "age":
			o.age = true
		}
	}
	return o
}

type column struct {
	index int
	name  string
	opts  tagOptions
}

// columns lists the displayable fields of struct type t.
func columns(t reflect.Type, wide bool) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		opts := parseTag(field.Tag.Get("table"))
		if opts.skip || (opts.wide && !wide) {
			continue
		}
		cols = append(cols, column{index: i, name: fieldName(field), opts: opts})
	}
	return cols
}

// fieldName prefers the json tag name over the Go field name.
func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func integer(v reflect.Value) (uint64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return 0, false
		}
		return uint64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true
	}
	return 0, false
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return ""
	}

	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return "-"
		}
		return t.UTC().Format("2006-01-02 15:04:05")
	}

	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return "-"
		}
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", v.Float())
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", v.Len())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// toSnakeCase converts CamelCase to Camel_Case; json names pass through.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table, optionally without the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
