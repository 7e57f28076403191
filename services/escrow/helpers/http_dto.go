package helpers

// Request/Response DTOs
//
// Required numeric fields are pointers so that a missing field is a binding error while an explicit
// zero still reaches the engine and gets its own message.
type ListItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required"`
}

type PurchaseRequest struct {
	Payment *int64 `json:"payment" binding:"required"`
}

type ResolveDisputeRequest struct {
	RefundToBuyer *bool `json:"refund_to_buyer" binding:"required"`
}

type UpdateFeeRequest struct {
	FeeBasisPoints *int64 `json:"fee_basis_points" binding:"required"`
}

type DepositRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type ItemResponse struct {
	ItemID       uint64 `json:"item_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Seller       string `json:"seller"`
	Buyer        string `json:"buyer,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

type EventResponse struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	ItemID     uint64 `json:"item_id"`
	Account    string `json:"account,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type FeeResponse struct {
	FeeBasisPoints int64  `json:"fee_basis_points"`
	FeePercent     string `json:"fee_percent"`
	Owner          string `json:"owner"`
}

type AccountResponse struct {
	Account        string `json:"account"`
	Balance        int64  `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}
