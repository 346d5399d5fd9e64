package application

import (
	"context"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// API paths of the order-management service.
const (
	PathCategories = "/categories"
	PathProducts   = "/products"
	PathOrders     = "/orders"
	PathUsers      = "/users"
	PathDailySales = "/analytics/daily-sales"
	PathHealth     = "/health"
)

type (
	OrdersController = ListController[domain.OrderFilter, domain.OrderSummary]
	UsersController  = ListController[domain.UserFilter, domain.User]
)

// ProductsController is the product list plus the category options used
// by its category filter.
type ProductsController struct {
	*ListController[domain.ProductFilter, domain.Product]
	api domain.APIClient

	catMu      sync.Mutex
	categories []domain.Category
}

func NewProductsController(api domain.APIClient, limit int) *ProductsController {
	return &ProductsController{
		ListController: NewListController[domain.ProductFilter, domain.Product](api, PathProducts, domain.ProductFilter{}, limit),
		api:            api,
		categories:     []domain.Category{},
	}
}

// LoadCategories fetches the category options. A failure leaves the list
// empty and is not reported: the filter simply offers no categories.
func (c *ProductsController) LoadCategories(ctx context.Context) []domain.Category {
	var list domain.ItemList[domain.Category]
	cats := []domain.Category{}
	if err := c.api.Get(ctx, PathCategories, nil, &list); err == nil && list.Items != nil {
		cats = list.Items
	}

	c.catMu.Lock()
	c.categories = cats
	c.catMu.Unlock()
	return append([]domain.Category(nil), cats...)
}

// CategoryName resolves a category id against the loaded options.
func (c *ProductsController) CategoryName(id int64) (string, bool) {
	c.catMu.Lock()
	defer c.catMu.Unlock()
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat.Name, true
		}
	}
	return "", false
}

func NewOrdersController(api domain.APIClient, limit int) *OrdersController {
	return NewListController[domain.OrderFilter, domain.OrderSummary](api, PathOrders, domain.OrderFilter{}, limit)
}

func NewUsersController(api domain.APIClient, limit int) *UsersController {
	return NewListController[domain.UserFilter, domain.User](api, PathUsers, domain.UserFilter{}, limit)
}

// Ping reports the API's health status.
func Ping(ctx context.Context, api domain.APIClient) (string, error) {
	var h domain.HealthStatus
	if err := api.Get(ctx, PathHealth, nil, &h); err != nil {
		return "", err
	}
	if h.Status == "" {
		return "unknown", nil
	}
	return h.Status, nil
}
