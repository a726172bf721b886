package postgres

import "errors"

// Ошибки снимка каталога
var (
	ErrEmptyBusinessID = errors.New("empty business id")
	ErrForeignProduct  = errors.New("product belongs to another business")
)
