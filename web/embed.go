// Package web встраивает страницу дашборда в бинарник.
package web

import (
	_ "embed"
)

//go:embed static/index.html
var index []byte

// Index — HTML дашборда: поле поиска, список монет, кнопка и область графика
func Index() []byte {
	return index
}
