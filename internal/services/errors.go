package services

import (
	"errors"

	"github.com/sbilibin2017/gw-diet-planner/internal/facades"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDailyLimitExceeded = errors.New("daily token limit exceeded")
	ErrInvalidPlan        = errors.New("model returned an invalid document")

	ErrUpstream        = facades.ErrUpstream
	ErrInvalidIdentity = facades.ErrInvalidIdentity
)
