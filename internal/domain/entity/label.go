package entity

// Label is a named, user-scoped marker attached to recipes. Tags and
// ingredients share this shape; they differ only in the table they live in
// and the endpoints that expose them.
type Label struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}
