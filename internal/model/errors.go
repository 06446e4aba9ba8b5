package model

import "errors"

var (
	// ErrRoundInProgress раунд ещё не завершён
	ErrRoundInProgress = errors.New("round in progress")
	// ErrInsufficientBalance баланс меньше текущей ставки
	ErrInsufficientBalance = errors.New("not enough balance")
	// ErrInvalidBetTier индекс ставки вне списка
	ErrInvalidBetTier = errors.New("invalid bet tier")
	// ErrNoResult ещё не было ни одного завершённого раунда
	ErrNoResult = errors.New("no settled round yet")
)
