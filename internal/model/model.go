// Package model contains data structures for storing launch parameters and DTOs exchanged with a search node
package model

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeNode   = AppMode("node")
)

// AppInit - проверенные параметры запуска, собираются парсером до любого поиска
type AppInit struct {
	Mode        AppMode
	Address     string // адрес, на котором слушает node
	Node        string // адрес node для делегированного поиска, пусто - ищем локально
	LogLevel    string
	SearchParam SearchParam
}

// SearchParam - что ищем и где
type SearchParam struct {
	Query      string // подстрока для поиска, может быть пустой
	FilePath   string // пусто - читаем stdin
	IgnoreCase bool   // выставляется наличием IGNORE_CASE в окружении
}

type SearchTask struct {
	TaskID     string `json:"tid" binding:"required"`
	Query      string `json:"query"`
	IgnoreCase bool   `json:"ignore_case"`
	Contents   string `json:"contents"`
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
