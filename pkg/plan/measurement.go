package plan

import (
	"github.com/google/uuid"
	"github.com/philipparndt/goplan/pkg/geometry"
)

// ManualMeasurement is a user-drawn measurement between two points in room
// space. It is created and deleted explicitly and otherwise immutable.
type ManualMeasurement struct {
	ID    string           `json:"id"`
	Start geometry.Vector2 `json:"start"`
	End   geometry.Vector2 `json:"end"`
}

// NewManualMeasurement creates a measurement with a fresh ID
func NewManualMeasurement(start, end geometry.Vector2) ManualMeasurement {
	return ManualMeasurement{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
	}
}

// Length returns the measured distance in centimeters
func (m ManualMeasurement) Length() float64 {
	return m.Start.Distance(m.End)
}
