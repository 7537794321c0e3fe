// File: example_test.go
// License: Apache-2.0

package arraypool_test

import (
	"fmt"

	"github.com/Sterbehilfe/arraypool"
)

func ExampleNew() {
	p := arraypool.New[byte](arraypool.WithLengthRange(16, 1024))

	buf := p.Rent(100)
	fmt.Println("rented:", len(buf))
	p.Return(buf, false)

	exact := p.RentExact(100)
	fmt.Println("exact:", len(exact))
	p.Return(exact, false)

	// Output:
	// rented: 128
	// exact: 100
}

func ExamplePool_RentScoped() {
	p := arraypool.New[rune]()

	r := p.RentScoped(32)
	defer r.Release()

	buf := r.Items()
	copy(buf, []rune("pooled"))
	fmt.Println(string(buf[:6]), len(buf))

	// Output:
	// pooled 32
}
