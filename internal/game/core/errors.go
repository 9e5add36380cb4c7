package core

import "errors"

var (
	ErrInvalidDimensions = errors.New("map dimensions must be positive")
	ErrMapTooSmall       = errors.New("map too small to hold a room")
	ErrNoRooms           = errors.New("map has no rooms")
)
