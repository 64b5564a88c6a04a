package changefeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(id string, extra map[string]interface{}) map[string]interface{} {
	r := map[string]interface{}{"id": id}
	for k, v := range extra {
		r[k] = v
	}
	return r
}

func TestApplyInsertPrepends(t *testing.T) {
	rows := []map[string]interface{}{row("b", nil), row("c", nil)}

	out := Apply(rows, ChangeEvent{Table: TableCompanies, Action: ActionInserted, Row: row("a", nil)})

	assert.Len(t, out, 3)
	assert.Equal(t, "a", out[0]["id"])
	assert.Equal(t, "b", out[1]["id"])
}

func TestApplyInsertIsIdempotent(t *testing.T) {
	rows := []map[string]interface{}{row("a", map[string]interface{}{"name": "original"})}

	out := Apply(rows, ChangeEvent{Action: ActionInserted, Row: row("a", map[string]interface{}{"name": "duplicate"})})

	assert.Len(t, out, 1)
	assert.Equal(t, "original", out[0]["name"])
}

func TestApplyUpdateReplacesInPlace(t *testing.T) {
	rows := []map[string]interface{}{
		row("a", map[string]interface{}{"status": "pending"}),
		row("b", map[string]interface{}{"status": "pending"}),
	}

	out := Apply(rows, ChangeEvent{Action: ActionUpdated, Row: row("b", map[string]interface{}{"status": "approved"})})

	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0]["id"])
	assert.Equal(t, "approved", out[1]["status"])
}

func TestApplyUpdateUnknownIdIsNoop(t *testing.T) {
	rows := []map[string]interface{}{row("a", nil)}

	out := Apply(rows, ChangeEvent{Action: ActionUpdated, Row: row("missing", nil)})

	assert.Equal(t, rows, out)
}

func TestApplyDeleteRemoves(t *testing.T) {
	rows := []map[string]interface{}{row("a", nil), row("b", nil), row("c", nil)}

	out := Apply(rows, ChangeEvent{Action: ActionDeleted, Row: row("b", nil)})

	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0]["id"])
	assert.Equal(t, "c", out[1]["id"])
}

func TestApplyEmptyIdIsNoop(t *testing.T) {
	rows := []map[string]interface{}{row("a", nil)}

	out := Apply(rows, ChangeEvent{Action: ActionInserted, Row: map[string]interface{}{"name": "no id"}})

	assert.Equal(t, rows, out)
}

func TestMarshalRoundTrip(t *testing.T) {
	ev := ChangeEvent{Table: TableShops, Action: ActionUpdated, Row: row("a", nil)}

	data, err := ev.Marshal()
	assert.NoError(t, err)

	got, err := Unmarshal(data)
	assert.NoError(t, err)
	assert.Equal(t, ev.Table, got.Table)
	assert.Equal(t, ev.Action, got.Action)
	assert.Equal(t, "a", got.RowId())
}
