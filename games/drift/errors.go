package drift

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBetOutOfRange is the only game error: a bet outside [min bet, remaining funds].
var ErrBetOutOfRange = errors.New("bet out of range")

// BetRangeError carries the rejected bet and the range it was checked against.
type BetRangeError struct {
	Bet float64
	Min float64
	Max float64
}

func (e *BetRangeError) Error() string {
	return fmt.Sprintf("bet amount must be between %v and %v, got %v", e.Min, e.Max, e.Bet)
}

func (e *BetRangeError) Is(target error) bool {
	return target == ErrBetOutOfRange
}

// CheckBet validates a bet against funds that already have the bet deducted.
func CheckBet(bet, minBet, remaining float64) error {
	if minBet <= bet && bet <= remaining {
		return nil
	}
	return &BetRangeError{Bet: bet, Min: minBet, Max: remaining}
}
