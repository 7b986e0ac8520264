package collection_test

import (
	"fmt"

	"github.com/wafkit/secvars/collection"
	"github.com/wafkit/secvars/exclusion"
)

func ExampleNew() {
	c := collection.New("session")

	// Duplicates coexist; Store never overwrites.
	c.Store("blocked_events", "3")
	c.Store("blocked_events", "4")

	for _, v := range c.ResolveSingleMatch("blocked_events") {
		fmt.Println(v.Key, "=", v.Value)
	}
	// Output:
	// blocked_events = 3
	// blocked_events = 4
}

func ExampleInMemory_StoreOrUpdateFirst() {
	c := collection.New("session")

	c.StoreOrUpdateFirst("score", "1") // inserts
	c.StoreOrUpdateFirst("score", "2") // updates in place

	v, _ := c.ResolveFirstRaw("score")
	fmt.Println("score:", v)
	fmt.Println("entries:", c.Len())
	// Output:
	// score: 2
	// entries: 1
}

func ExampleInMemory_ResolveMultiMatches() {
	c := collection.New("tx")
	c.Store("ip", "1.2.3.4")
	c.Store("ua", "curl")
	c.Store("path", "/login")

	// Wildcard resolution walks the whole store, newest entries first.
	for _, v := range c.ResolveMultiMatches("", exclusion.None) {
		fmt.Println(v.Key)
	}
	// Output:
	// path
	// ua
	// ip
}

func ExampleInMemory_ResolveRegularExpression() {
	c := collection.New("global")
	c.Store("ip:1.2.3.4", "12")
	c.Store("ip:5.6.7.8", "3")
	c.Store("ua:curl", "1")

	// Patterns match keys, never values.
	vars, err := c.ResolveRegularExpression("^ip:", exclusion.None)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range vars {
		fmt.Println(v.Key, "=", v.Value)
	}
	// Output:
	// ip:5.6.7.8 = 3
	// ip:1.2.3.4 = 12
}

func ExampleInMemory_SetExpiry() {
	c := collection.New("session")
	c.Store("token", "abc")
	c.SetExpiry("token", -1) // already expired

	// The raw peek ignores expiry; a resolving scan evicts the entry.
	v, ok := c.ResolveFirstRaw("token")
	fmt.Println("raw:", v, ok)
	fmt.Println("resolved:", len(c.ResolveSingleMatch("token")))
	fmt.Println("entries:", c.Len())
	// Output:
	// raw: abc true
	// resolved: 0
	// entries: 0
}
