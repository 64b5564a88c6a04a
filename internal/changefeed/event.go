package changefeed

import (
	"encoding/json"
	"time"
)

type Action string

const (
	ActionInserted Action = "inserted"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
)

// Watched table names, mirrored by the websocket subscription protocol.
const (
	TableCompanies          = "companies"
	TableShops              = "shops"
	TableCustomizations     = "customizations"
	TableVerifications      = "verifications"
	TableWalletTransactions = "wallet_transactions"
	TableErrors             = "errors"
	TableSystemSettings     = "system_settings"
)

// ChangeEvent describes one row change on a watched table. Row always
// carries the record id; for deletes it may carry nothing else.
type ChangeEvent struct {
	Table      string                 `json:"table"`
	Action     Action                 `json:"action"`
	Row        map[string]interface{} `json:"row"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e ChangeEvent) RowId() string {
	id, _ := e.Row["id"].(string)
	return id
}

func (e ChangeEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func Unmarshal(data []byte) (ChangeEvent, error) {
	var e ChangeEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
