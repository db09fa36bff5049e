package ringlist_test

import (
	"testing"

	"github.com/mgnsk/circlist/ringlist"
	. "github.com/onsi/gomega"
)

func TestNewElementIsSelfLinked(t *testing.T) {
	g := NewWithT(t)

	e := ringlist.NewElement("one")

	g.Expect(e.Next()).To(Equal(e))
	g.Expect(e.Prev()).To(Equal(e))
	g.Expect(e.Linked()).To(BeFalse())
}

func TestLink(t *testing.T) {
	t.Run("after", func(t *testing.T) {
		g := NewWithT(t)

		a := ringlist.NewElement("a")
		b := ringlist.NewElement("b")
		c := ringlist.NewElement("c")

		a.Link(b)
		b.Link(c)

		expectValidRing(g, a, 3)
		g.Expect(a.Next().Value).To(Equal("b"))
		g.Expect(a.Next().Next().Value).To(Equal("c"))
		g.Expect(a.Prev().Value).To(Equal("c"))
	})

	t.Run("before via Prev", func(t *testing.T) {
		g := NewWithT(t)

		a := ringlist.NewElement("a")
		c := ringlist.NewElement("c")
		b := ringlist.NewElement("b")

		a.Link(c)
		c.Prev().Link(b)

		expectValidRing(g, a, 3)
		g.Expect(a.Next().Value).To(Equal("b"))
		g.Expect(c.Prev().Value).To(Equal("b"))
	})
}

func TestUnlink(t *testing.T) {
	t.Run("middle element", func(t *testing.T) {
		g := NewWithT(t)

		a := ringlist.NewElement("a")
		b := ringlist.NewElement("b")
		c := ringlist.NewElement("c")

		a.Link(b)
		b.Link(c)

		b.Unlink()

		expectValidRing(g, a, 2)
		g.Expect(a.Next().Value).To(Equal("c"))
		g.Expect(a.Prev().Value).To(Equal("c"))
		g.Expect(b.Linked()).To(BeFalse())
	})

	t.Run("only neighbor", func(t *testing.T) {
		g := NewWithT(t)

		a := ringlist.NewElement("a")
		b := ringlist.NewElement("b")

		a.Link(b)
		b.Unlink()

		expectValidRing(g, a, 1)
		g.Expect(a.Linked()).To(BeFalse())
	})
}

func expectValidRing[V any](g *WithT, e *ringlist.Element[V], n int) {
	next := e
	prev := e

	for i := 0; i < n; i++ {
		g.Expect(next.Next().Prev()).To(Equal(next))

		next = next.Next()
		prev = prev.Prev()
	}

	g.Expect(next).To(Equal(e))
	g.Expect(prev).To(Equal(e))
}
