package models

// LineItem represents one product+variant selection in a gift box.
// Title, price, thumb and category are snapshots taken at add time and are
// not re-fetched if the catalog changes later.
type LineItem struct {
	Key          string `json:"key"` // product id, plus ":<variant value>" when a variant was chosen
	ProductID    string `json:"productId"`
	Title        string `json:"title"`
	VariantLabel string `json:"variant,omitempty"`
	UnitPrice    int64  `json:"price"` // Whole LKR, variant price if one was chosen
	Quantity     int    `json:"qty"`   // 1..99
	Thumb        string `json:"thumb,omitempty"`
	Category     string `json:"category,omitempty"`
}

// Customer carries the optional identification the buyer supplies at
// checkout. Both fields may be empty.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// BoxSnapshot is the read view of a gift box handed to controllers.
// Example response:
// {
//   "id": "c2c5a8dc-59f5-4a57-9c6a-2f8a4c0d9e11",
//   "items": [
//     {
//       "key": "chain-figaro-50:50",
//       "productId": "chain-figaro-50",
//       "title": "Figaro Chain",
//       "variant": "50 cm",
//       "price": 14990,
//       "qty": 1
//     }
//   ],
//   "note": "gift wrap please",
//   "subtotal": 14990,
//   "open": true
// }
type BoxSnapshot struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Note     string     `json:"note"`
	Subtotal int64      `json:"subtotal"`
	Open     bool       `json:"open"`
}

// AddItemRequest represents the request body for adding an item to a box
// Example: {"productId": "chain-figaro-50", "variant": "50", "qty": 1}
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant,omitempty"` // variant value, not label
	Qty       int    `json:"qty,omitempty"`     // defaults to 1
}

// UpdateQtyRequest represents the request body for changing a line's quantity
// Example: {"qty": 3}
type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

// NoteRequest represents the request body for replacing the box note
// Example: {"note": "gift wrap please"}
type NoteRequest struct {
	Note string `json:"note"`
}

// CheckoutRequest represents the request body for checkout
// Example: {"name": "Amal", "phone": "0771234567"}
type CheckoutRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CheckoutResponse represents the response for a successful checkout
// Example response:
// {
//   "whatsappUrl": "https://wa.me/94771425684?text=Hi%20Axceria..."
// }
type CheckoutResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
}

// CreateBoxResponse represents the response for creating a gift box
// Example: {"id": "c2c5a8dc-59f5-4a57-9c6a-2f8a4c0d9e11"}
type CreateBoxResponse struct {
	ID string `json:"id"`
}
