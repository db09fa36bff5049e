package main

import (
	"fmt"

	"github.com/mgnsk/circlist"
)

func main() {
	l := circlist.New("a", "b", "d")

	// Find the position of "d" and insert before it.
	pos := l.Begin()
	for !pos.AtEnd() {
		v, err := pos.Value()
		if err != nil {
			panic(err)
		}

		if v == "d" {
			break
		}

		if err := pos.Next(); err != nil {
			panic(err)
		}
	}

	l.Insert(pos, "c")

	l.Do(func(v string) bool {
		fmt.Println(v)
		return true
	})

	// Walk the list back to front.
	for it := l.RBegin(); it != l.REnd(); {
		v, err := it.Value()
		if err != nil {
			panic(err)
		}

		fmt.Println(v)

		if err := it.Next(); err != nil {
			panic(err)
		}
	}
}
