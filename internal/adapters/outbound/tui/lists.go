package tui

import (
	"fmt"
	"strings"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// Money formats an amount with two decimals.
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// RenderProducts renders the product list. categoryName may be nil, in
// which case category ids are shown.
func RenderProducts(rows []domain.Product, view ListView, categoryName func(int64) (string, bool)) string {
	var b strings.Builder
	renderTitle(&b, "Products")
	renderListChrome(&b, view)

	cols := []column{{key: "Name"}, {key: "SKU"}, {key: "Price", numeric: true}, {key: "InStock", numeric: true}, {key: "Category"}}
	data := make([][]string, 0, len(rows))
	for _, p := range rows {
		cat := fmt.Sprintf("%d", p.CategoryID)
		if categoryName != nil {
			if name, ok := categoryName(p.CategoryID); ok {
				cat = name
			}
		}
		data = append(data, []string{p.Name, p.SKU, Money(p.Price), fmt.Sprintf("%d", p.InStock), cat})
	}
	b.WriteString(renderTable(cols, data, emptyMessage(view, "No products found.")))
	b.WriteString(RenderPagination(view.Pagination))
	return b.String()
}

// RenderOrders renders the order list.
func RenderOrders(rows []domain.OrderSummary, view ListView) string {
	var b strings.Builder
	renderTitle(&b, "Orders")
	renderListChrome(&b, view)

	cols := []column{{key: "ID", numeric: true}, {key: "UserID", numeric: true}, {key: "Date"}, {key: "Status"}}
	data := make([][]string, 0, len(rows))
	for _, o := range rows {
		data = append(data, []string{
			fmt.Sprintf("%d", o.ID),
			fmt.Sprintf("%d", o.UserID),
			o.OrderDate.Display(),
			statusBadge(o.Status),
		})
	}
	b.WriteString(renderTable(cols, data, emptyMessage(view, "No orders found.")))
	b.WriteString(RenderPagination(view.Pagination))
	return b.String()
}

// RenderUsers renders the customer list.
func RenderUsers(rows []domain.User, view ListView) string {
	var b strings.Builder
	renderTitle(&b, "Users")
	renderListChrome(&b, view)

	cols := []column{{key: "ID", numeric: true}, {key: "FullName"}, {key: "Email"}, {key: "CreatedAt"}}
	data := make([][]string, 0, len(rows))
	for _, u := range rows {
		data = append(data, []string{fmt.Sprintf("%d", u.ID), u.FullName, u.Email, u.CreatedAt.Display()})
	}
	b.WriteString(renderTable(cols, data, emptyMessage(view, "No users found.")))
	b.WriteString(RenderPagination(view.Pagination))
	return b.String()
}

// RenderCategories renders the category options.
func RenderCategories(cats []domain.Category) string {
	var b strings.Builder
	renderTitle(&b, "Categories")
	data := make([][]string, 0, len(cats))
	for _, c := range cats {
		data = append(data, []string{fmt.Sprintf("%d", c.ID), c.Name})
	}
	b.WriteString(renderTable([]column{{key: "ID", numeric: true}, {key: "Name"}}, data, "No categories."))
	return b.String()
}

// The "no results" row only appears once loading has finished.
func emptyMessage(view ListView, msg string) string {
	if view.Loading {
		return ""
	}
	return msg
}
