package changefeed

// Apply folds one change event into an ordered row list. Inserts prepend
// and are idempotent on the row id, updates replace the matching row in
// place, deletes remove it. Events for unknown ids leave the list
// untouched except inserts, which always land.
func Apply(rows []map[string]interface{}, ev ChangeEvent) []map[string]interface{} {
	id := ev.RowId()
	if id == "" {
		return rows
	}

	switch ev.Action {
	case ActionInserted:
		for _, row := range rows {
			if rowId, _ := row["id"].(string); rowId == id {
				return rows
			}
		}
		out := make([]map[string]interface{}, 0, len(rows)+1)
		out = append(out, ev.Row)
		return append(out, rows...)

	case ActionUpdated:
		out := make([]map[string]interface{}, len(rows))
		for i, row := range rows {
			if rowId, _ := row["id"].(string); rowId == id {
				out[i] = ev.Row
			} else {
				out[i] = row
			}
		}
		return out

	case ActionDeleted:
		out := make([]map[string]interface{}, 0, len(rows))
		for _, row := range rows {
			if rowId, _ := row["id"].(string); rowId == id {
				continue
			}
			out = append(out, row)
		}
		return out
	}

	return rows
}
