package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/grocery-service/internal/app/order/contracts"
	"github.com/light-bringer/grocery-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/grocery-service/internal/app/order/queries/list_orders"
	"github.com/light-bringer/grocery-service/internal/app/order/usecases/place_order"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	placeOrder *place_order.Interactor
	listOrders *list_orders.Query
	getOrder   *get_order.Query
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	placeOrder *place_order.Interactor,
	listOrders *list_orders.Query,
	getOrder *get_order.Query,
) *OrderHandler {
	return &OrderHandler{
		placeOrder: placeOrder,
		listOrders: listOrders,
		getOrder:   getOrder,
	}
}

type orderItemResponse struct {
	OrderItemID string  `json:"order_item_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Price       string  `json:"price"`
	UnitPrice   float64 `json:"unit_price"`
}

type orderResponse struct {
	OrderID  string              `json:"order_id"`
	Total    string              `json:"total"`
	Status   string              `json:"status"`
	PlacedAt time.Time           `json:"placed_at"`
	Items    []orderItemResponse `json:"items"`
}

func toOrderResponse(dto *contracts.OrderDTO) orderResponse {
	items := make([]orderItemResponse, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, orderItemResponse{
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			UnitPrice:   item.UnitPrice,
		})
	}
	return orderResponse{
		OrderID:  dto.OrderID,
		Total:    dto.TotalStr,
		Status:   dto.Status,
		PlacedAt: dto.PlacedAt,
		Items:    items,
	}
}

// placeOrderRequest is the JSON shape for order placement.
type placeOrderRequest struct {
	Items []struct {
		ProductID string `json:"product_id"`
		Quantity  int64  `json:"quantity"`
	} `json:"items"`
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var body placeOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	items := make([]place_order.ItemRequest, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, place_order.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	resp, err := h.placeOrder.Execute(r.Context(), &place_order.Request{
		Principal: principalFrom(r.Context()),
		Items:     items,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"order_id": resp.OrderID,
		"total":    resp.Total,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &list_orders.Request{
		Principal: principalFrom(r.Context()),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	orders, err := h.listOrders.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, dto := range orders {
		out = append(out, toOrderResponse(dto))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": out})
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getOrder.Execute(r.Context(), &get_order.Request{
		Principal: principalFrom(r.Context()),
		OrderID:   r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(dto))
}
