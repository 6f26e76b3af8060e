package factory

import "test/orm"

type Account struct {
	orm.Model
	Owner string
}

// Register binds the receiver to the package tracker and returns it for
// chaining.
func (a *Account) Register() *Account {
	tracker.Register(a)

	return a
}

var tracker orm.Tracker

// NewAccount constructs and registers in one place; call sites trust it.
func NewAccount(owner string) *Account {
	a := &Account{Owner: owner}
	tracker.Register(a)

	return a
}

// NewDirect registers through the entity's own chaining method.
func NewDirect(owner string) *Account {
	return (&Account{Owner: owner}).Register()
}

// NewUnchecked never registers, so it is not trusted and its construction is
// reported.
func NewUnchecked(owner string) *Account {
	return &Account{Owner: owner} // want `entity test/register/factory.Account is constructed and returned without being registered with Tracker.Register`
}

func consume(owner string) {
	a := NewAccount(owner)
	a.Owner = "updated"

	b := NewDirect(owner)
	_ = b
}
