package model

import "errors"

var (
	ErrInvalidPosition   = errors.New("position out of bounds")
	ErrNoPieceAtSource   = errors.New("no piece at source square")
	ErrIllegalMove       = errors.New("illegal move")
	ErrPromotionRequired = errors.New("promotion choice required")
	ErrEmptyHistory      = errors.New("no moves to undo")
)
