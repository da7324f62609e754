package mines

import "errors"

var (
	ErrInvalidParams = errors.New("invalid game params")
	ErrOutOfBounds   = errors.New("point is out of bounds")
	ErrGameOver      = errors.New("game is over")
)
