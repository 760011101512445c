// Package models defines the client-side data carried through the mint flow:
// booking requests, generated content, minted records and per-wallet
// collections.
package models

import (
	"math"
	"strings"

	"github.com/dmitrijs2005/carbonnft/internal/common"
)

// BookingRequest is the transient form input for one offset project.
type BookingRequest struct {
	ProjectName string
	Location    string
	CO2Tons     float64
}

// InvalidBookingMessage is shown for any invalid booking field.
const InvalidBookingMessage = "All fields are required and CO2 tons must be positive."

// Validate reports the first offending field as a *common.FieldError. The
// message is the same for every field.
func (r BookingRequest) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return common.NewFieldError("projectName", InvalidBookingMessage)
	}
	if strings.TrimSpace(r.Location) == "" {
		return common.NewFieldError("location", InvalidBookingMessage)
	}
	if math.IsNaN(r.CO2Tons) || math.IsInf(r.CO2Tons, 0) || r.CO2Tons <= 0 {
		return common.NewFieldError("co2Tons", InvalidBookingMessage)
	}
	return nil
}

// GeneratedContent is what the content generator returns for a booking.
// ImageURL is either a data URI or a remote URI.
type GeneratedContent struct {
	Description string
	ImageURL    string
}
