package a

import (
	"slices"

	"test/helper"
)

func process(xs []Child) {
	_ = xs
}

func (p *Parent) Children() []Child {
	return p.children // want `returning live managed collection field children, not a copy`
}

func (p *Parent) CloneChildren() []Child {
	return slices.Clone(p.children)
}

func (p *Parent) AppendCopy() []Child {
	return append([]Child(nil), p.children...)
}

func (p *Parent) CopyInto(dst []Child) int {
	return copy(dst, p.children)
}

func (p *Parent) Add(c Child) {
	p.children = append(p.children, c) // want `direct assignment to managed association field children`
}

func (p *Parent) Reset() {
	p.children = nil // want `direct assignment to managed association field children`
}

func (p *Parent) Replace(i int, c Child) {
	p.children[i] = c // want `element modification of managed collection field children`
}

func (p *Parent) First() Child {
	return p.children[0]
}

func (p *Parent) Count() int {
	return len(p.children)
}

func (p *Parent) Has(c Child) bool {
	return slices.Contains(p.children, c)
}

func (p *Parent) Bind() {
	xs := p.children // want `storing a live reference to managed collection field children, not a copy, in a new binding`
	_ = xs
}

func (p *Parent) Pass() {
	process(p.children) // want `passing live managed collection field children to test/assoc/a.process, not a copy`
}

func (p *Parent) Head() []Child {
	return p.children[:1] // want `slicing managed collection field children aliases the live backing store`
}

func (p *Parent) Alias() {
	ptr := &p.children // want `taking the address of managed association field children aliases the live value`
	_ = ptr
}

func (p *Parent) Adopt(o *Parent) {
	p.owner = o // want `direct assignment to managed association field owner`
}

func (p *Parent) Pick(all bool) []Child {
	if all {
		return p.children // want `returning live managed collection field children, not a copy`
	}

	return slices.Clone(p.children)
}

func (p *Parent) Convert() []Child {
	return []Child(p.children) // want `passing live managed collection field children to .*Child, not a copy`
}

func (p *Parent) CopyOf() []Child {
	return helper.CopyOf(p.children) // want `passing live managed collection field children to test/helper.CopyOf, not a copy`
}

func (p *Parent) Snapshot() Snapshot {
	return Snapshot{Kids: p.children} // want `storing a live reference to managed collection field children, not a copy`
}

func (p *Parent) Publish(s *Snapshot) {
	s.Kids = p.children // want `assigning live managed collection field children, not a copy`
}

func (p *Parent) Lazy() func() []Child {
	return func() []Child {
		return p.children // want `returning live managed collection field children, not a copy`
	}
}

func (p *Parent) SetTag(k, v string) {
	p.tags[k] = v // want `element modification of managed collection field tags`
}

func (p *Parent) Suppressed() []Child {
	return p.children //nolint:ormassoc
}

func (g *Group) Mutate(fn func(Child)) {
	g.members.Each(fn) // want `call to Each on managed collection field members is not a whitelisted safe operation`
}
