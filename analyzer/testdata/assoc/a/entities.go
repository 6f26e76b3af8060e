package a

import "test/orm"

type Child struct {
	orm.Model
	Name string
}

type Parent struct {
	orm.Model
	children []Child           `orm:"one2many"`
	tags     map[string]string `orm:"many2many"`
	owner    *Parent           `orm:"many2one"`
	nicks    *[]string         `orm:"one2many"` // want `managed collection field nicks cannot be nullable`
}

type ChildSet []Child

func (s ChildSet) Each(fn func(Child)) {
	for _, c := range s {
		fn(c)
	}
}

type Group struct {
	orm.Model
	members ChildSet `orm:"many2many"` // want `managed collection field members must be a plain slice or map, or a whitelisted container`
}

// Snapshot is not an entity; it only receives values in tests below.
type Snapshot struct {
	Kids []Child
}
