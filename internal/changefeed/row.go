package changefeed

import "encoding/json"

// Row converts any serializable value into the generic row payload
// carried by change events. Conversion failures yield a nil row; the
// event still carries the table and action.
func Row(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var row map[string]interface{}
	if err := json.Unmarshal(data, &row); err != nil {
		return nil
	}
	return row
}

// DeletedRow builds the minimal payload for a delete event.
func DeletedRow(id string) map[string]interface{} {
	return map[string]interface{}{"id": id}
}
