package custom

import (
	"test/helper"
	"test/orm"
)

type Item struct {
	orm.Model
	Label string
}

type Box struct {
	orm.Model
	items []Item `orm:"one2many"`
}

func (b *Box) Items() []Item {
	return helper.CopyOf(b.items)
}

func (b *Box) Raw() []Item {
	return b.items // want `returning live managed collection field items, not a copy`
}
