package menu

import "errors"

var (
	ErrInvalidMenuItem = errors.New("menu item id, name and positive price are required")
)
