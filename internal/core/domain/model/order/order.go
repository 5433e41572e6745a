package order

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a committed customer order (commande). It is the aggregate
// root tracking the purchased product lines and the shipment lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a business order number
//   - References its client by stable identifier; the client name is kept
//     only as a denormalized display cache
//   - CreatedAt is set once at creation and never changes
//   - The stored total may drift from the recomputed sum of line totals;
//     callers that need the exact figure recompute it through the pricing
//     service and persist it back with SetTotal
//   - An admin step override, when present, takes precedence over the
//     derived progress classification
//
// Orders are hard-deleted by an explicit admin action; there is no tombstone.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing sequential reference, e.g. "ALKN042"
	number string

	// clientID references the client aggregate
	clientID kernel.UUID

	// clientName is a denormalized display cache, not a join key
	clientName string

	// lines are the purchased product rows
	lines []product.Line

	// mode determines freight pricing and the tracking icon
	mode shipping.Mode

	// total is the stored aggregate amount; see the drift note above
	total float64

	// createdAt is the immutable creation instant
	createdAt time.Time

	// stepOverride is the optional admin-set lifecycle stage
	stepOverride *Step

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The creation instant must be
// non-zero: a real order always has one, and the progress derivation treats
// its absence as "no progress data".
func NewOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	clientName string,
	mode shipping.Mode,
	lines []product.Line,
	total float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClient(clientID, clientName),
		o.setMode(mode),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.lines = lines
	o.total = total
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including the
// optional admin step override.
func RestoreOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	clientName string,
	mode shipping.Mode,
	lines []product.Line,
	total float64,
	createdAt time.Time,
	stepOverride *Step,
) (*Order, error) {
	o, err := NewOrder(id, number, clientID, clientName, mode, lines, total, createdAt)
	if err != nil {
		return nil, err
	}

	if stepOverride != nil {
		if err = stepOverride.Validate(); err != nil {
			return nil, err
		}
		s := *stepOverride
		o.stepOverride = &s
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the sequential business reference.
func (o *Order) Number() string {
	return o.number
}

// ClientID returns the identifier of the ordering client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ClientName returns the denormalized client display name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Lines returns the purchased product rows.
func (o *Order) Lines() []product.Line {
	return o.lines
}

// Mode returns the expedition mode.
func (o *Order) Mode() shipping.Mode {
	return o.mode
}

// Total returns the stored aggregate amount.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the immutable creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StepOverride returns the admin-set lifecycle stage, or nil when the stage
// is derived purely from elapsed time.
func (o *Order) StepOverride() *Step {
	return o.stepOverride
}

// OverrideStep records an admin decision about the lifecycle stage.
// The override wins over the elapsed-time classification and the staleness
// auto-close until it is cleared.
func (o *Order) OverrideStep(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	o.stepOverride = &step
	return nil
}

// ClearStepOverride removes the admin override so the stage derives from
// elapsed time again.
func (o *Order) ClearStepOverride() {
	o.stepOverride = nil
}

// SetLines replaces the product rows during editing. The stored total is not
// touched; callers recompute and persist it explicitly.
func (o *Order) SetLines(lines []product.Line) {
	o.lines = lines
}

// SetTotal stores a freshly computed aggregate amount.
func (o *Order) SetTotal(total float64) {
	o.total = total
}

// Progress derives the shipment progress of this order at the given instant,
// applying the admin override precedence.
func (o *Order) Progress(now time.Time) Progress {
	createdAt := o.createdAt
	return ComputeProgress(&createdAt, o.stepOverride, now)
}

// ShouldAutoClose reports whether the stale-order rule applies: the estimated
// delivery date is more than StaleCloseAfterDays in the past and the
// effective step is still not Delivered. The sweep job persists the close by
// overriding the step to Delivered.
func (o *Order) ShouldAutoClose(now time.Time) bool {
	estimated := o.createdAt.Add(DeliverySLADays * 24 * time.Hour)
	if !isStale(estimated, now) {
		return false
	}
	return !o.Progress(now).Step.IsFinal()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setClient(clientID kernel.UUID, clientName string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	o.clientID = clientID
	o.clientName = clientName
	return nil
}

func (o *Order) setMode(mode shipping.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.mode = mode
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	o.createdAt = createdAt
	return nil
}
