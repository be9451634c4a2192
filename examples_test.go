package qvortex_test

import (
	"fmt"

	"github.com/qvortex/qvortex"
)

func ExampleSum256() {
	digest := qvortex.Sum256([]byte("The quick brown fox jumps over the lazy dog"), nil)

	fmt.Printf("%x\n", digest)
	// Output: bbedb334e94ccb86b564dc1907c01f55c06f2621fb7f6397439fd2d44222e3a1
}

func ExampleNew() {
	// The returned hash.Hash keeps its key-derived table resident, so a
	// single value can hash many streams via Reset.
	h := qvortex.New([]byte("qvortex test key"))

	_, _ = h.Write([]byte("The quick brown fox "))
	_, _ = h.Write([]byte("jumps over the lazy dog"))

	fmt.Printf("%x\n", h.Sum(nil))
	// Output: 540a59cccb9a91026e285bbe91b19db82381f10346aa65861f05bd125622dee1
}

func ExampleContext() {
	var c qvortex.Context
	c.Init([]byte("key"))

	c.Update([]byte("ab"))
	c.Update([]byte("c"))

	// Final destroys the context; re-initialize it to hash again.
	var digest [qvortex.Size]byte
	if err := c.Final(&digest); err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", digest)
	// Output: 3863f9b6204de1a074228252ebd249961d17c5701d21e6a25e0f7216b66f8d6f
}
