// internal/domain/order/ids.go
package order

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues order and tracking identifiers
type IDGenerator interface {
	NextOrderID() string
	NextTrackingID() string
}

// SequenceGenerator numbers orders from a process-wide monotonic counter and
// gives each order a random UUID tracking id. It is safe for concurrent use.
type SequenceGenerator struct {
	counter atomic.Uint64
}

// NewSequenceGenerator creates a generator starting at ORD-000001
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// NextOrderID returns the next order number
func (g *SequenceGenerator) NextOrderID() string {
	return fmt.Sprintf("ORD-%06d", g.counter.Add(1))
}

// NextTrackingID returns a fresh tracking number
func (g *SequenceGenerator) NextTrackingID() string {
	return "TRK-" + strings.ToUpper(uuid.NewString())
}
