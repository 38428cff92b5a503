package entities

// Owned is implemented by records that belong to exactly one user. The owner
// is set once, at creation, to the authenticated principal and is forced back
// onto the record on every replace.
type Owned interface {
	GetID() string
	SetID(id string)
	Owner() string
	SetOwner(username string)
	SetCreatedAt(ts string)
}
