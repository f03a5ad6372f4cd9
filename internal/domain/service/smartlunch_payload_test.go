package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryPlacesPayload_DropsMalformedEntries(t *testing.T) {
	raw := `{"companies_delivery_places":[
		{"delivery_places":[
			{"id":1,"name":"Biuro","default":true},
			{"id":"x","name":"Broken"},
			{"id":"12","name_pl":"Magazyn"},
			"not-a-place",
			{"id":2.5,"name":7}
		]},
		{"delivery_places":"none"},
		42
	]}`

	var payload DeliveryPlacesPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.Len(t, payload.Companies, 3)
	places := payload.Companies[0].DeliveryPlaces
	require.Len(t, places, 4)

	require.NotNil(t, places[0].ID)
	assert.Equal(t, int64(1), *places[0].ID)
	assert.True(t, places[0].IsDefault())

	assert.Nil(t, places[1].ID, "non-numeric id reads as missing")

	require.NotNil(t, places[2].ID)
	assert.Equal(t, int64(12), *places[2].ID)
	assert.Equal(t, "Magazyn", places[2].NamePL)

	assert.Nil(t, places[3].ID)
	assert.Empty(t, places[3].Name)

	assert.Empty(t, payload.Companies[1].DeliveryPlaces)
	assert.Empty(t, payload.Companies[2].DeliveryPlaces)
}

func TestDeliveryPlacesPayload_WrongContainerReadsEmpty(t *testing.T) {
	for _, raw := range []string{`[]`, `{"companies_delivery_places":{}}`, `null`, `"text"`} {
		var payload DeliveryPlacesPayload
		require.NoError(t, json.Unmarshal([]byte(raw), &payload), raw)
		assert.Empty(t, payload.Companies, raw)
	}
}

func TestDeliveryDatesPayload_DropsMalformedEntries(t *testing.T) {
	raw := `{"delivery_dates":[
		{"date":"2024-06-01","hours":["11:30",1200,"12:00"]},
		{"date":"2024-06-02","hours":"none"},
		{"date":20240603,"hours":["13:00"]},
		{"hours":["14:00"]},
		[]
	]}`

	var payload DeliveryDatesPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.Len(t, payload.DeliveryDates, 2)
	assert.Equal(t, DeliveryDate{Date: "2024-06-01", Hours: []any{"11:30", 1200.0, "12:00"}}, payload.DeliveryDates[0])
	assert.Equal(t, DeliveryDate{Date: "2024-06-02"}, payload.DeliveryDates[1])
}

func TestFundingPayload_Shapes(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantSetting   bool
		wantAvailable bool
	}{
		{name: "complete", raw: `{"funding_setting":{"available_fundings":{"daily_cents":1}}}`, wantSetting: true, wantAvailable: true},
		{name: "available_fundings list", raw: `{"funding_setting":{"available_fundings":[]}}`, wantSetting: true},
		{name: "available_fundings null", raw: `{"funding_setting":{"available_fundings":null}}`, wantSetting: true},
		{name: "funding_setting string", raw: `{"funding_setting":"off"}`},
		{name: "top-level list", raw: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload FundingPayload
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &payload))

			assert.Equal(t, tt.wantSetting, payload.FundingSetting != nil)
			if payload.FundingSetting != nil {
				assert.Equal(t, tt.wantAvailable, payload.FundingSetting.AvailableFundings != nil)
			}
		})
	}
}
