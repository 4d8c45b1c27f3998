package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Keys that must be present and non-null. last_file_path,
// last_review_date and assigned_month are optional and may be absent.
var (
	documentKeys  = []string{"households", "settings", "version"}
	settingsKeys  = []string{"theme", "auto_backup", "backup_count"}
	householdKeys = []string{
		"id", "household_name", "persons", "next_review_due", "review_type", "auc",
		"segment", "review_status", "priority_flag", "created", "updated",
	}
	personKeys = []string{"name", "dob"}
)

// checkRequired reports the first required field that is missing or null.
func checkRequired(data []byte) error {
	root, err := requireKeys(data, "document", documentKeys)
	if err != nil {
		return err
	}
	if _, err := requireKeys(root["settings"], "settings", settingsKeys); err != nil {
		return err
	}

	var households []json.RawMessage
	if err := json.Unmarshal(root["households"], &households); err != nil {
		return err
	}
	for i, raw := range households {
		where := fmt.Sprintf("households[%d]", i)
		h, err := requireKeys(raw, where, householdKeys)
		if err != nil {
			return err
		}
		var persons []json.RawMessage
		if err := json.Unmarshal(h["persons"], &persons); err != nil {
			return err
		}
		for j, p := range persons {
			if _, err := requireKeys(p, fmt.Sprintf("%s.persons[%d]", where, j), personKeys); err != nil {
				return err
			}
		}
	}
	return nil
}

func requireKeys(data json.RawMessage, where string, keys []string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("%s is null", where)
	}
	for _, k := range keys {
		v, ok := fields[k]
		if !ok {
			return nil, fmt.Errorf("%s: missing field %q", where, k)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fmt.Errorf("%s: field %q is null", where, k)
		}
	}
	return fields, nil
}
