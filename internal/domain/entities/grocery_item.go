package entities

// GroceryItem is a shopping-list entry owned by a single user. UserID holds
// the owner's username.
type GroceryItem struct {
	ID        string  `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID    string  `json:"userId" gorm:"index;not null" bson:"userId"`
	Name      string  `json:"name" bson:"name"`
	Category  string  `json:"category" bson:"category"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Purchased bool    `json:"purchased" bson:"purchased"`
	CreatedAt string  `json:"createdAt" bson:"createdAt"`
}

func (GroceryItem) TableName() string { return "groceries" }

func (g *GroceryItem) GetID() string          { return g.ID }
func (g *GroceryItem) SetID(id string)        { g.ID = id }
func (g *GroceryItem) Owner() string          { return g.UserID }
func (g *GroceryItem) SetOwner(u string)      { g.UserID = u }
func (g *GroceryItem) SetCreatedAt(ts string) { g.CreatedAt = ts }
