// Package output renders CLI results as a table, JSON or YAML.
//
// Table output is derived from struct fields by reflection. Headers come
// from json tags; the table tag tunes a column:
//
//	table:"-"      hide the field
//	table:"wide"   show only with --wide
//	table:"bytes"  render an integer as a human-readable size (1.2 MiB)
//	table:"age"    render a time as a relative age (3 minutes ago)
//
// JSON and YAML output use the json tags, so all three formats name
// fields the same way.
package output
