package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"escrow-engine/internal/escrowerrors"
	"escrow-engine/internal/ledger"
	model "escrow-engine/internal/models"
	"escrow-engine/utils"

	"github.com/gin-gonic/gin"
)

// CallerHeader carries the identity of the account performing a request
const CallerHeader = "X-Caller"

var errInvalidItemID = errors.New("item id must be a positive integer")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// Caller reads the caller identity header. On failure it has already written a 400 response.
func Caller(c *gin.Context, handlerName string) (model.Address, bool) {
	caller := c.GetHeader(CallerHeader)
	if caller == "" {
		msg := escrowerrors.ErrMissingCaller.Error()
		utils.JSONError(c, http.StatusBadRequest, escrowerrors.ErrMissingCaller, msg)
		utils.Warn(handlerName+": missing caller", map[string]any{"path": c.FullPath()})
		return "", false
	}
	return model.Address(caller), true
}

// ItemID parses the :item_id path parameter. On failure it has already written a 400 response.
func ItemID(c *gin.Context, handlerName string) (uint64, bool) {
	raw := c.Param("item_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("%w: %q", errInvalidItemID, raw), "invalid item id")
		utils.Warn(handlerName+": invalid item id", map[string]any{"item_id": raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps engine errors to HTTP status code and the engine's fixed message
func MapErrorToHTTP(err error) (int, string) {
	message, ok := escrowerrors.MessageOf(err)
	if !ok {
		return http.StatusInternalServerError, "internal server error"
	}

	switch escrowerrors.KindOf(err) {
	case escrowerrors.NotFound:
		return http.StatusNotFound, message
	case escrowerrors.Unauthorized:
		return http.StatusForbidden, message
	case escrowerrors.InvalidState:
		return http.StatusConflict, message
	case escrowerrors.InvalidArgument:
		return http.StatusBadRequest, message
	case escrowerrors.InsufficientFunds:
		return http.StatusPaymentRequired, message
	case escrowerrors.TransferFailed:
		return http.StatusUnprocessableEntity, message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError writes the mapped error response and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewItemResponse renders an item; amounts are also given as decimal strings with the configured precision
func NewItemResponse(item model.Item, decimals int32) ItemResponse {
	resp := ItemResponse{
		ItemID:       item.ItemID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		PriceDisplay: ledger.FormatAmount(item.Price, decimals),
		Seller:       string(item.Seller),
		Buyer:        string(item.Buyer),
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !item.CompletedAt.IsZero() {
		resp.CompletedAt = item.CompletedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func NewEventResponses(evts []model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(evts))
	for _, e := range evts {
		out = append(out, EventResponse{
			EventID:    e.EventID,
			Type:       string(e.Type),
			ItemID:     e.ItemID,
			Account:    string(e.Account),
			Amount:     e.Amount,
			OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func NewAccountResponse(account model.Address, balance int64, decimals int32) AccountResponse {
	return AccountResponse{
		Account:        string(account),
		Balance:        balance,
		BalanceDisplay: ledger.FormatAmount(balance, decimals),
	}
}

func NewFeeResponse(bps int64, owner model.Address) FeeResponse {
	return FeeResponse{
		FeeBasisPoints: bps,
		FeePercent:     ledger.FormatBasisPoints(bps),
		Owner:          string(owner),
	}
}
