package handler

import (
	"net/http"

	model "escrow-engine/internal/models"
	"escrow-engine/services/escrow/helpers"
	"escrow-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=escrow_handler.go -destination=mock_handler.go -package=handler

type EscrowServiceInterface interface {
	List(seller model.Address, name, description string, price int64) (model.Item, error)
	Purchase(caller model.Address, itemID uint64, payment int64) (model.Item, error)
	ConfirmDelivery(caller model.Address, itemID uint64) (model.Item, error)
	RequestRefund(caller model.Address, itemID uint64) (model.Item, error)
	AgreeToRefund(caller model.Address, itemID uint64) (model.Item, error)
	ResolveDispute(caller model.Address, itemID uint64, refundToBuyer bool) (model.Item, error)
	UpdateFee(caller model.Address, newFeeBasisPoints int64) error
	Deposit(caller model.Address, amount int64) (int64, error)
	GetItem(itemID uint64) (model.Item, error)
	Events(itemID uint64) ([]model.Event, error)
	FeeBasisPoints() int64
	Owner() model.Address
	Balance(account model.Address) int64
}

type EscrowHandler struct {
	service  EscrowServiceInterface
	decimals int32
}

// NewEscrowHandler creates a handler; decimals is the precision of the display amounts
func NewEscrowHandler(service EscrowServiceInterface, decimals int32) *EscrowHandler {
	return &EscrowHandler{service: service, decimals: decimals}
}

// ListItemHandler handles POST /items
func (h *EscrowHandler) ListItemHandler(c *gin.Context) {
	const name = "ListItemHandler"

	caller, ok := helpers.Caller(c, name)
	if !ok {
		return
	}
	var req helpers.ListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	item, err := h.service.List(caller, req.Name, req.Description, *req.Price)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"caller": caller, "price": *req.Price})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item, h.decimals), "item listed successfully")
	helpers.LogSuccess(name, "item listed successfully", map[string]any{
		"item_id": item.ItemID,
		"seller":  item.Seller,
		"price":   item.Price,
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *EscrowHandler) GetItemHandler(c *gin.Context) {
	const name = "GetItemHandler"

	itemID, ok := helpers.ItemID(c, name)
	if !ok {
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, h.decimals), "item retrieved successfully")
}

// GetItemEventsHandler handles GET /items/:item_id/events
func (h *EscrowHandler) GetItemEventsHandler(c *gin.Context) {
	const name = "GetItemEventsHandler"

	itemID, ok := helpers.ItemID(c, name)
	if !ok {
		return
	}

	evts, err := h.service.Events(itemID)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewEventResponses(evts), "events retrieved successfully")
	helpers.LogSuccess(name, "events retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(evts),
	})
}

// PurchaseHandler handles POST /items/:item_id/purchase
func (h *EscrowHandler) PurchaseHandler(c *gin.Context) {
	const name = "PurchaseHandler"

	caller, itemID, ok := h.callerAndItem(c, name)
	if !ok {
		return
	}
	var req helpers.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	h.transition(c, name, "item purchased successfully", caller, itemID, func() (model.Item, error) {
		return h.service.Purchase(caller, itemID, *req.Payment)
	})
}

// ConfirmDeliveryHandler handles POST /items/:item_id/confirm
func (h *EscrowHandler) ConfirmDeliveryHandler(c *gin.Context) {
	const name = "ConfirmDeliveryHandler"

	caller, itemID, ok := h.callerAndItem(c, name)
	if !ok {
		return
	}
	h.transition(c, name, "delivery confirmed successfully", caller, itemID, func() (model.Item, error) {
		return h.service.ConfirmDelivery(caller, itemID)
	})
}

// RequestRefundHandler handles POST /items/:item_id/refund-request
func (h *EscrowHandler) RequestRefundHandler(c *gin.Context) {
	const name = "RequestRefundHandler"

	caller, itemID, ok := h.callerAndItem(c, name)
	if !ok {
		return
	}
	h.transition(c, name, "refund requested successfully", caller, itemID, func() (model.Item, error) {
		return h.service.RequestRefund(caller, itemID)
	})
}

// AgreeToRefundHandler handles POST /items/:item_id/refund-agreement
func (h *EscrowHandler) AgreeToRefundHandler(c *gin.Context) {
	const name = "AgreeToRefundHandler"

	caller, itemID, ok := h.callerAndItem(c, name)
	if !ok {
		return
	}
	h.transition(c, name, "item refunded successfully", caller, itemID, func() (model.Item, error) {
		return h.service.AgreeToRefund(caller, itemID)
	})
}

// ResolveDisputeHandler handles POST /items/:item_id/resolve
func (h *EscrowHandler) ResolveDisputeHandler(c *gin.Context) {
	const name = "ResolveDisputeHandler"

	caller, itemID, ok := h.callerAndItem(c, name)
	if !ok {
		return
	}
	var req helpers.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	h.transition(c, name, "dispute resolved successfully", caller, itemID, func() (model.Item, error) {
		return h.service.ResolveDispute(caller, itemID, *req.RefundToBuyer)
	})
}

// GetFeeHandler handles GET /fee
func (h *EscrowHandler) GetFeeHandler(c *gin.Context) {
	resp := helpers.NewFeeResponse(h.service.FeeBasisPoints(), h.service.Owner())
	utils.JSONResponse(c, http.StatusOK, resp, "fee retrieved successfully")
}

// UpdateFeeHandler handles PUT /fee
func (h *EscrowHandler) UpdateFeeHandler(c *gin.Context) {
	const name = "UpdateFeeHandler"

	caller, ok := helpers.Caller(c, name)
	if !ok {
		return
	}
	var req helpers.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	if err := h.service.UpdateFee(caller, *req.FeeBasisPoints); err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"caller": caller, "fee_bps": *req.FeeBasisPoints})
		return
	}

	resp := helpers.NewFeeResponse(h.service.FeeBasisPoints(), h.service.Owner())
	utils.JSONResponse(c, http.StatusOK, resp, "fee updated successfully")
	helpers.LogSuccess(name, "fee updated successfully", map[string]any{"fee_bps": resp.FeeBasisPoints})
}

// DepositHandler handles POST /deposits. Callers can only fund their own account.
func (h *EscrowHandler) DepositHandler(c *gin.Context) {
	const name = "DepositHandler"

	caller, ok := helpers.Caller(c, name)
	if !ok {
		return
	}
	var req helpers.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	balance, err := h.service.Deposit(caller, *req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"caller": caller, "amount": *req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAccountResponse(caller, balance, h.decimals), "deposit credited successfully")
	helpers.LogSuccess(name, "deposit credited successfully", map[string]any{
		"account": caller,
		"amount":  *req.Amount,
		"balance": balance,
	})
}

// GetAccountHandler handles GET /accounts/:account
func (h *EscrowHandler) GetAccountHandler(c *gin.Context) {
	account := model.Address(c.Param("account"))
	balance := h.service.Balance(account)
	utils.JSONResponse(c, http.StatusOK, helpers.NewAccountResponse(account, balance, h.decimals), "account retrieved successfully")
}

func (h *EscrowHandler) callerAndItem(c *gin.Context, name string) (model.Address, uint64, bool) {
	caller, ok := helpers.Caller(c, name)
	if !ok {
		return "", 0, false
	}
	itemID, ok := helpers.ItemID(c, name)
	if !ok {
		return "", 0, false
	}
	return caller, itemID, true
}

// transition runs one lifecycle operation and renders the resulting item
func (h *EscrowHandler) transition(c *gin.Context, name, message string, caller model.Address, itemID uint64, op func() (model.Item, error)) {
	item, err := op()
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"caller": caller, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, h.decimals), message)
	helpers.LogSuccess(name, message, map[string]any{
		"item_id": item.ItemID,
		"caller":  caller,
		"status":  item.Status,
	})
}
