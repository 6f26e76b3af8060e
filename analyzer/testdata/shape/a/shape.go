package a

import "test/orm"

type Account struct {
	orm.Model
	Name     string
	Balance  int64
	secret   string             // want `field secret of entity Account must be exported`
	Callback func()             // want `field Callback of entity Account must have a persistable type, not func\(\)`
	wake     chan struct{}      // want `field wake of entity Account must be exported and must have a persistable type, not chan struct\{\}`
	in, // want `field in of entity Account must be exported and must have a persistable type, not chan int`
	out chan int // want `field out of entity Account must be exported and must have a persistable type, not chan int`
	cache    map[string]string  `orm:"-"`
	scratch  []byte             `gorm:"-"`
	Labels   map[string]string
}

// Plain structs are not entities; nothing in here is checked.
type Transfer struct {
	From     string
	callback func()
	done     chan struct{}
}
