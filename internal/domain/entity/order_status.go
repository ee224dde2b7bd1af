package entity

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderAccepted       OrderStatus = "accepted"
	OrderRejected       OrderStatus = "rejected"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderAccepted, OrderRejected},
	OrderAccepted:       {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
	OrderRejected:       nil,
	OrderCancelled:      nil,
	OrderDelivered:      nil,
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}

	return false
}

// NextStatuses returns the legal successors of s.
func (s OrderStatus) NextStatuses() []OrderStatus {
	next := orderTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)

	return out
}

// TransitionActor identifies which party may perform a transition.
type TransitionActor string

const (
	ActorSeller   TransitionActor = "seller"
	ActorCourier  TransitionActor = "courier"
	ActorCustomer TransitionActor = "customer"
	ActorAdmin    TransitionActor = "admin"
)

// AllowedActors returns the parties permitted to move an order into next.
// The owning seller decides pending orders; couriers and admins advance
// fulfilment; cancellation is open to the owning customer, the owning
// seller and admins.
func AllowedActors(next OrderStatus) []TransitionActor {
	switch next {
	case OrderAccepted, OrderRejected:
		return []TransitionActor{ActorSeller}
	case OrderPreparing, OrderOutForDelivery, OrderDelivered:
		return []TransitionActor{ActorCourier, ActorAdmin}
	case OrderCancelled:
		return []TransitionActor{ActorCustomer, ActorSeller, ActorAdmin}
	default:
		return nil
	}
}

// ReleasesStock reports whether entering s returns the order's items to stock.
func (s OrderStatus) ReleasesStock() bool {
	return s == OrderRejected || s == OrderCancelled
}
