package domain

type Guest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
