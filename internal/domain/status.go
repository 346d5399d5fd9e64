package domain

import "strings"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatuses enumerates all order statuses in workflow order.
var ValidStatuses = []OrderStatus{
	StatusPending,
	StatusPaid,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ParseOrderStatus accepts a status name case-insensitively. Blank input
// yields the default, pending.
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusPending, nil
	}
	for _, st := range ValidStatuses {
		if OrderStatus(s) == st {
			return st, nil
		}
	}
	return "", Invalidf("unknown status %q (valid: %s)", s, StatusNames())
}

func (s OrderStatus) String() string { return string(s) }

func statusNames() []string {
	names := make([]string, len(ValidStatuses))
	for i, st := range ValidStatuses {
		names[i] = string(st)
	}
	return names
}

// StatusNames lists the valid status strings, for flag help text.
func StatusNames() string {
	return strings.Join(statusNames(), ", ")
}
