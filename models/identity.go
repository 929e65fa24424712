package models

import "gorm.io/gorm"

// Identity names the owner of a cart or order: an authenticated user, an
// anonymous browser session, or nobody at all. The user and session ids are
// mutually exclusive by construction; the zero value is anonymous.
type Identity struct {
	userID    string
	sessionID string
}

func UserIdentity(id string) Identity {
	return Identity{userID: id}
}

func SessionIdentity(id string) Identity {
	return Identity{sessionID: id}
}

func (i Identity) IsUser() bool      { return i.userID != "" }
func (i Identity) IsSession() bool   { return i.userID == "" && i.sessionID != "" }
func (i Identity) IsAnonymous() bool { return i.userID == "" && i.sessionID == "" }

func (i Identity) UserID() string    { return i.userID }
func (i Identity) SessionID() string { return i.sessionID }

// CartScope narrows a query to the cart rows this identity owns. An anonymous
// identity matches nothing.
func (i Identity) CartScope(db *gorm.DB) *gorm.DB {
	switch {
	case i.IsUser():
		return db.Where("user_id = ?", i.userID)
	case i.IsSession():
		return db.Where("session_id = ?", i.sessionID)
	default:
		return db.Where("1 = 0")
	}
}

// Claim stamps ownership onto a cart item.
func (i Identity) Claim(item *CartItem) {
	if i.IsUser() {
		id := i.userID
		item.UserID = &id
		return
	}
	if i.IsSession() {
		id := i.sessionID
		item.SessionID = &id
	}
}
