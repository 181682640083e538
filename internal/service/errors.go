// Package service provides business logic implementations. Services
// mutate live sessions under the per-player lock and record coin
// movements as transactions.
package service

import "errors"

// Common errors surfaced to handlers for friendly replies.
var (
	ErrPetAsleep          = errors.New("pet is sleeping")
	ErrNotEnoughCoins     = errors.New("not enough coins")
	ErrTooTired           = errors.New("pet is too tired")
	ErrUnknownFood        = errors.New("unknown food")
	ErrUnknownToy         = errors.New("unknown toy")
	ErrUnknownGame        = errors.New("unknown minigame")
	ErrUnknownMission     = errors.New("unknown mission")
	ErrMissionNotReady    = errors.New("mission not completed or already claimed")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrConversionTooSmall = errors.New("conversion amount below minimum")
	ErrUnknownCosmetic    = errors.New("unknown cosmetic")
)
