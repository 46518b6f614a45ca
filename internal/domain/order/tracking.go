// internal/domain/order/tracking.go
package order

import "time"

// TrackingStep is one stage of the shipment timeline
type TrackingStep struct {
	Step      int        `json:"step"`
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	At        *time.Time `json:"at,omitempty"`
}

// TrackingInfo pairs an order with its timeline
type TrackingInfo struct {
	Order    *Order         `json:"order"`
	Timeline []TrackingStep `json:"timeline"`
}

var trackingStages = []struct {
	label  string
	offset time.Duration
}{
	{"Order Placed", 0},
	{"Payment Confirmed", 15 * time.Minute},
	{"Processing Order", time.Hour},
	{"Shipped", 23 * time.Hour},
	{"Out for Delivery", 46 * time.Hour},
	{"Delivered", 54 * time.Hour},
}

// completedStages maps the fixture status to the number of finished stages
func completedStages(status OrderStatus) int {
	switch status {
	case OrderStatusDelivered:
		return len(trackingStages)
	case OrderStatusShipped:
		return 4
	default:
		return 3
	}
}

// stageSpan is the offset of the last stage completed for status
func stageSpan(status OrderStatus) time.Duration {
	return trackingStages[completedStages(status)-1].offset
}

// Timeline builds the fixed tracking timeline for an order as seen at now.
// Completed stages are never dated after now.
func Timeline(o *Order, now time.Time) []TrackingStep {
	done := completedStages(o.Status)
	steps := make([]TrackingStep, len(trackingStages))
	for i, stage := range trackingStages {
		steps[i] = TrackingStep{
			Step:  i + 1,
			Label: stage.label,
		}
		if i < done {
			at := o.PlacedAt.Add(stage.offset)
			if at.After(now) {
				at = now
			}
			steps[i].Completed = true
			steps[i].At = &at
		}
	}
	return steps
}

// Track returns the tracking view of an order
func Track(o *Order, now time.Time) TrackingInfo {
	return TrackingInfo{
		Order:    o,
		Timeline: Timeline(o, now),
	}
}
