package entities

// Expense records a single shopping trip. Date is an ISO calendar date
// (yyyy-mm-dd); Items is the number of items bought.
type Expense struct {
	ID        string  `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID    string  `json:"userId" gorm:"index;not null" bson:"userId"`
	Date      string  `json:"date" gorm:"size:10" bson:"date"`
	Amount    float64 `json:"amount" bson:"amount"`
	Store     string  `json:"store" bson:"store"`
	Items     int     `json:"items" bson:"items"`
	CreatedAt string  `json:"createdAt" bson:"createdAt"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) GetID() string          { return e.ID }
func (e *Expense) SetID(id string)        { e.ID = id }
func (e *Expense) Owner() string          { return e.UserID }
func (e *Expense) SetOwner(u string)      { e.UserID = u }
func (e *Expense) SetCreatedAt(ts string) { e.CreatedAt = ts }
