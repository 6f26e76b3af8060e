package a

import (
	"fmt"

	"test/orm"
)

type User struct {
	orm.Model
	Name string
}

// Register binds the receiver to the package tracker and returns it for
// chaining.
func (u *User) Register() *User {
	tracker.Register(u)

	return u
}

func (u *User) Describe() string {
	return u.Name
}

var tracker orm.Tracker

var seed = &User{Name: "seed"} // want `entity test/register/a.User is constructed but never registered with Tracker.Register`

func save(u *User) {
	_ = u
}

func directArgument(name string) {
	tracker.Register(&User{Name: name})
}

func bindThenRegister(name string) {
	u := &User{Name: name}
	tracker.Register(u)
	u.Name = "renamed"
}

func viaNew(name string) {
	u := new(User)
	tracker.Register(u)
	u.Name = name
}

func chained(name string) {
	(&User{Name: name}).Register()
}

func usedFirst(name string) {
	u := &User{Name: name} // want `entity test/register/a.User is used before being registered with Tracker.Register`
	fmt.Println(u)
	tracker.Register(u)
}

func returned(name string) *User {
	return &User{Name: name} // want `entity test/register/a.User is constructed and returned without being registered with Tracker.Register`
}

func escapes(name string) {
	save(&User{Name: name}) // want `entity test/register/a.User is constructed and escapes without being registered with Tracker.Register`
}

func dropped() {
	_ = &User{Name: "gone"} // want `entity test/register/a.User is constructed and escapes without being registered with Tracker.Register`
}

func methodFirst(name string) string {
	return (&User{Name: name}).Describe() // want `entity test/register/a.User is used before being registered with Tracker.Register`
}

func suppressed(name string) *User {
	return &User{Name: name} //nolint:ormregister
}

func run(fn func()) {
	fn()
}

func literalRegistered(name string) {
	run(func() {
		u := &User{Name: name}
		tracker.Register(u)
	})
}

func literalUnregistered(name string) {
	run(func() {
		u := &User{Name: name} // want `entity test/register/a.User is used before being registered with Tracker.Register`
		fmt.Println(u)
	})
}

func literalEscapes() {
	run(func() {
		save(&User{Name: "inner"}) // want `entity test/register/a.User is constructed and escapes without being registered with Tracker.Register`
	})
}
