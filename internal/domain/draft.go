package domain

import "strings"

const (
	MsgDuplicateProduct = "Each product can only appear once."
	MsgDraftIncomplete  = "User ID and at least one item are required."
)

// Draft item fields addressable through UpdateItem.
const (
	FieldProductID = "product_id"
	FieldQuantity  = "quantity"
)

// DraftItem is one editable line of an order draft, held as typed.
type DraftItem struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

func blankItem() DraftItem { return DraftItem{Quantity: "1"} }

// OrderDraft is a not-yet-submitted order. It always holds at least one row.
type OrderDraft struct {
	UserID string      `json:"user_id"`
	Status OrderStatus `json:"status"`
	Items  []DraftItem `json:"items"`
}

// NewOrderDraft returns an empty draft: no user, pending, one blank row.
func NewOrderDraft() OrderDraft {
	return OrderDraft{Status: StatusPending, Items: []DraftItem{blankItem()}}
}

// AddItem appends a blank row.
func (d *OrderDraft) AddItem() {
	d.Items = append(d.Items, blankItem())
}

// RemoveItem deletes the row at index. The last remaining row cannot be removed.
func (d *OrderDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return Invalidf("no item at position %d", index+1)
	}
	if len(d.Items) == 1 {
		return Invalidf("an order needs at least one item row")
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// UpdateItem sets one field of the row at index.
func (d *OrderDraft) UpdateItem(index int, field, value string) error {
	if index < 0 || index >= len(d.Items) {
		return Invalidf("no item at position %d", index+1)
	}
	switch field {
	case FieldProductID:
		d.Items[index].ProductID = value
	case FieldQuantity:
		d.Items[index].Quantity = value
	default:
		return Invalidf("unknown item field %q", field)
	}
	return nil
}

// OrderCreate is the body of POST /orders.
type OrderCreate struct {
	UserID int64             `json:"user_id"`
	Status OrderStatus       `json:"status"`
	Items  []OrderItemCreate `json:"items"`
}

type OrderItemCreate struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// Build validates the draft and produces the request payload. No part of
// the draft is modified.
func (d OrderDraft) Build() (OrderCreate, error) {
	// Product ids are checked first so a duplicate is reported even when
	// the rest of the draft is incomplete.
	seen := make(map[int64]bool, len(d.Items))
	ids := make([]int64, len(d.Items))
	for i, it := range d.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			continue
		}
		id, ok := ParsePositiveInt(it.ProductID)
		if !ok {
			return OrderCreate{}, Invalidf("Product ID on row %d must be a positive whole number.", i+1)
		}
		if seen[id] {
			return OrderCreate{}, &ValidationError{Message: MsgDuplicateProduct}
		}
		seen[id] = true
		ids[i] = id
	}

	status := d.Status
	if status == "" {
		status = StatusPending
	}
	payload := OrderCreate{Status: status, Items: []OrderItemCreate{}}
	for i, it := range d.Items {
		if ids[i] == 0 {
			continue
		}
		qty, ok := ParsePositiveInt(it.Quantity)
		if !ok {
			return OrderCreate{}, Invalidf("Quantity on row %d must be a positive whole number.", i+1)
		}
		payload.Items = append(payload.Items, OrderItemCreate{ProductID: ids[i], Quantity: qty})
	}

	userID, ok := ParsePositiveInt(d.UserID)
	if !ok || len(payload.Items) == 0 {
		return OrderCreate{}, &ValidationError{Message: MsgDraftIncomplete}
	}
	payload.UserID = userID
	return payload, nil
}
