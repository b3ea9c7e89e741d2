package carrito_items

// AddItemRequest HTTP request model
type AddItemRequest struct {
	ConsumibleID int64 `json:"consumibleId"`
}
