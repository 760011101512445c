package models

import "time"

// TimestampLayout is the ISO-8601 UTC layout with milliseconds used for
// NftData.Timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const displayLayout = "Jan 2, 2006, 3:04 PM"

// NftData is a generated preview or a minted record. Field names on the
// wire match the persisted collection layout.
type NftData struct {
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	ProjectName string  `json:"projectName"`
	Location    string  `json:"location"`
	CO2Tons     float64 `json:"co2Tons"`
	Timestamp   string  `json:"timestamp"`
}

// NewNftData combines a booking with its generated content, stamped at t.
func NewNftData(req BookingRequest, content GeneratedContent, t time.Time) NftData {
	return NftData{
		ImageURL:    content.ImageURL,
		Description: content.Description,
		ProjectName: req.ProjectName,
		Location:    req.Location,
		CO2Tons:     req.CO2Tons,
		Timestamp:   FormatTimestamp(t),
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DisplayTime renders the timestamp for humans in the local time zone.
// Unparseable timestamps are returned unchanged.
func (n NftData) DisplayTime() string {
	return n.DisplayTimeIn(time.Local)
}

// DisplayTimeIn is DisplayTime for an explicit location.
func (n NftData) DisplayTimeIn(loc *time.Location) string {
	t, err := time.Parse(time.RFC3339Nano, n.Timestamp)
	if err != nil {
		return n.Timestamp
	}
	return t.In(loc).Format(displayLayout)
}
