package service

import (
	"testing"

	"agegate-admin-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettingValueKnownPairs(t *testing.T) {
	pricing := DefaultSettingValue(entity.SettingCategoryPricing, entity.SettingKeyVerificationMethods)
	assert.NotNil(t, pricing)
	assert.Equal(t, float64(20), pricing["bankid"])
	assert.Equal(t, float64(2), pricing["revalidate"])

	notifications := DefaultSettingValue(entity.SettingCategoryNotifications, entity.SettingKeyEmailNotifications)
	assert.NotNil(t, notifications)
	assert.Equal(t, true, notifications["error_alerts"])
	assert.Empty(t, notifications["recipients"])

	invoice := DefaultSettingValue(entity.SettingCategoryBilling, entity.SettingKeyInvoiceSettings)
	assert.NotNil(t, invoice)
	assert.Equal(t, float64(21), invoice["vat_rate"])
	assert.Equal(t, float64(14), invoice["due_days"])
}

func TestDefaultSettingValueServiceProviders(t *testing.T) {
	for _, key := range []string{"bankid", "mojeid"} {
		value := DefaultSettingValue(entity.SettingCategoryServices, key)
		assert.NotNil(t, value, key)
		assert.Equal(t, "sandbox", value["environment"], key)
	}

	ocr := DefaultSettingValue(entity.SettingCategoryServices, "ocr")
	assert.Equal(t, 0.8, ocr["min_confidence"])

	facescan := DefaultSettingValue(entity.SettingCategoryServices, "facescan")
	assert.Equal(t, 0.9, facescan["min_confidence"])
}

func TestDefaultSettingValueUnknownPair(t *testing.T) {
	assert.Nil(t, DefaultSettingValue("unknown", "unknown"))
	assert.Nil(t, DefaultSettingValue(entity.SettingCategoryPricing, "unknown"))
}
