package guard

import (
	"escrow-engine/internal/escrowerrors"
	"escrow-engine/internal/ledger"
	model "escrow-engine/internal/models"
)

// Check is a single precondition. Checks never mutate state.
type Check func() error

// All evaluates checks in order and returns the first failure
func All(checks ...Check) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// ValidCaller rejects empty identities and the engine's own escrow account
func ValidCaller(caller model.Address) Check {
	return func() error {
		if caller == "" {
			return escrowerrors.ErrMissingCaller
		}
		if caller == ledger.EscrowAccount {
			return escrowerrors.ErrReservedCaller
		}
		return nil
	}
}

// IsOwner requires the caller to be the marketplace owner
func IsOwner(caller, owner model.Address) Check {
	return func() error {
		if caller != owner {
			return escrowerrors.ErrOnlyOwner
		}
		return nil
	}
}

// IsSeller requires the caller to be the item's seller
func IsSeller(caller model.Address, item model.Item) Check {
	return func() error {
		if caller != item.Seller {
			return escrowerrors.ErrOnlySeller
		}
		return nil
	}
}

// IsBuyer requires the caller to be the item's buyer. An unset buyer never matches.
func IsBuyer(caller model.Address, item model.Item) Check {
	return func() error {
		if item.Buyer == "" || caller != item.Buyer {
			return escrowerrors.ErrOnlyBuyer
		}
		return nil
	}
}

// NotSeller rejects the seller purchasing their own item
func NotSeller(caller model.Address, item model.Item) Check {
	return func() error {
		if caller == item.Seller {
			return escrowerrors.ErrSellerIsBuyer
		}
		return nil
	}
}

// InStatus requires the item to be in one of statuses, failing with err otherwise
func InStatus(item model.Item, err error, statuses ...model.ItemStatus) Check {
	return func() error {
		for _, s := range statuses {
			if item.Status == s {
				return nil
			}
		}
		return err
	}
}

// PositivePrice rejects zero and negative prices
func PositivePrice(price int64) Check {
	return func() error {
		if price <= 0 {
			return escrowerrors.ErrZeroPrice
		}
		return nil
	}
}

// CoversPrice requires the payment to be at least the price
func CoversPrice(payment, price int64) Check {
	return func() error {
		if payment < price {
			return escrowerrors.ErrInsufficientFunds
		}
		return nil
	}
}

// FeeWithinCap requires the fee to be within [0, MaxFeeBasisPoints]
func FeeWithinCap(feeBasisPoints int64) Check {
	return func() error {
		if feeBasisPoints < 0 || feeBasisPoints > ledger.MaxFeeBasisPoints {
			return escrowerrors.ErrFeeTooHigh
		}
		return nil
	}
}
