package service

import "encoding/json"

// The remote payloads are decoded field by field: a container of the wrong
// shape reads as empty and a malformed entry is dropped on its own, so only
// a body that is not JSON at all fails a refresh.

// UnmarshalJSON keeps every place entry that is an object.
func (p *DeliveryPlacesPayload) UnmarshalJSON(data []byte) error {
	*p = DeliveryPlacesPayload{}
	for _, rawCompany := range rawArray(rawObject(data)["companies_delivery_places"]) {
		var company CompanyDeliveryPlaces
		for _, rawPlace := range rawArray(rawObject(rawCompany)["delivery_places"]) {
			fields := rawObject(rawPlace)
			if fields == nil {
				continue
			}
			company.DeliveryPlaces = append(company.DeliveryPlaces, DeliveryPlace{
				ID:      rawInt64(fields["id"]),
				NamePL:  rawString(fields["name_pl"]),
				Name:    rawString(fields["name"]),
				Default: rawValue(fields["default"]),
			})
		}
		p.Companies = append(p.Companies, company)
	}

	return nil
}

// UnmarshalJSON keeps every date entry with a string date. Hours that are
// not a list read as no hours.
func (p *DeliveryDatesPayload) UnmarshalJSON(data []byte) error {
	*p = DeliveryDatesPayload{}
	for _, rawDate := range rawArray(rawObject(data)["delivery_dates"]) {
		fields := rawObject(rawDate)
		date := rawString(fields["date"])
		if date == "" {
			continue
		}
		entry := DeliveryDate{Date: date}
		for _, rawHour := range rawArray(fields["hours"]) {
			entry.Hours = append(entry.Hours, rawValue(rawHour))
		}
		p.DeliveryDates = append(p.DeliveryDates, entry)
	}

	return nil
}

// UnmarshalJSON reads funding_setting.available_fundings when both are
// objects and leaves the setting nil otherwise.
func (p *FundingPayload) UnmarshalJSON(data []byte) error {
	*p = FundingPayload{}
	setting := rawObject(rawObject(data)["funding_setting"])
	if setting == nil {
		return nil
	}
	p.FundingSetting = &FundingSetting{}

	available := rawObject(setting["available_fundings"])
	if available == nil {
		return nil
	}
	p.FundingSetting.AvailableFundings = &AvailableFundings{
		DailyCents:   rawValue(available["daily_cents"]),
		MonthlyCents: rawValue(available["monthly_cents"]),
	}

	return nil
}

// rawObject returns nil unless raw is a JSON object.
func rawObject(raw json.RawMessage) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil {
		return nil
	}

	return fields
}

// rawArray returns nil unless raw is a JSON array.
func rawArray(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}

	return items
}

func rawString(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}

	return s
}

// rawInt64 accepts integral numbers and numeric strings.
func rawInt64(raw json.RawMessage) *int64 {
	var n json.Number
	if json.Unmarshal(raw, &n) != nil {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}

	return &i
}

func rawValue(raw json.RawMessage) any {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return nil
	}

	return v
}
