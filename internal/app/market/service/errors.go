package service

import "errors"

// Ошибки бизнес-логики для обработки в handlers
var (
	ErrInvalidFeedURL     = errors.New("invalid feed url")
	ErrFeedUnavailable    = errors.New("feed is unavailable")
	ErrInvalidFeed        = errors.New("malformed feed document")
	ErrShopNameTaken      = errors.New("shop name belongs to another user")
	ErrShopNotFound       = errors.New("shop not found")
	ErrInvalidItemsFormat = errors.New("invalid items format")
	ErrNoItems            = errors.New("no valid items specified")
	ErrItemAlreadyAdded   = errors.New("item already selected")
	ErrOrderNotFound      = errors.New("order not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidState       = errors.New("invalid state value")
)
