package domain

import "time"

// TrackingStage is one milestone in the simulated delivery timeline.
// Date is nil for stages that have not happened yet.
type TrackingStage struct {
	Status   string     `json:"status"`
	Location string     `json:"location"`
	Date     *time.Time `json:"date,omitempty"`
}

// TrackingInfo is the synthesized delivery-progress view for one order.
// It is not persisted; it reflects no real carrier data.
type TrackingInfo struct {
	TrackingID        string          `json:"tracking_id"`
	CurrentStatus     string          `json:"current_status"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	History           []TrackingStage `json:"history"`
	Upcoming          []TrackingStage `json:"upcoming"`
}

type stageTemplate struct {
	status   string
	location string
}

var trackingStages = []stageTemplate{
	{"Order Confirmed", "DharmaVerse Warehouse"},
	{"Picked & Packed", "DharmaVerse Warehouse"},
	{"In Transit", "Local Distribution Center"},
	{"Out for Delivery", "Your City"},
	{"Delivered", "Your Address"},
}

// SynthesizeTracking builds the tracking view for an order. Milestones are
// spread evenly across the method's delivery window starting at createdAt,
// so the result is a pure function of (createdAt, method, now). Stages at
// or before now form the history; the rest are upcoming with no timestamp.
func SynthesizeTracking(trackingID string, createdAt time.Time, method ShippingMethod, now time.Time) TrackingInfo {
	window := time.Duration(RateFor(method).Days) * 24 * time.Hour
	step := window / time.Duration(len(trackingStages)-1)

	info := TrackingInfo{
		TrackingID:        trackingID,
		CurrentStatus:     trackingStages[0].status,
		EstimatedDelivery: createdAt.Add(window),
	}
	for i, tmpl := range trackingStages {
		at := createdAt.Add(step * time.Duration(i))
		if !at.After(now) {
			ts := at
			info.History = append(info.History, TrackingStage{
				Status:   tmpl.status,
				Location: tmpl.location,
				Date:     &ts,
			})
			info.CurrentStatus = tmpl.status
		} else {
			info.Upcoming = append(info.Upcoming, TrackingStage{
				Status:   tmpl.status,
				Location: tmpl.location,
			})
		}
	}
	return info
}
