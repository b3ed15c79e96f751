// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	a := autodiff.NewLabeled(2, "a")
	b := autodiff.NewLabeled(-3, "b")
	c := autodiff.NewLabeled(10, "c")
	f := autodiff.NewLabeled(-2, "f")
	L := a.Mul(b).Add(c).Mul(f)

	L.Backward()

	fmt.Println(L.Data())
	fmt.Println(a.Grad(), b.Grad(), c.Grad(), f.Grad())
	// Output:
	// -8
	// 6 -4 -2 4
}

func ExamplePow() {
	x := autodiff.NewValue(2)

	y, err := autodiff.Pow(x, 3)
	if err != nil {
		panic(err)
	}
	y.Backward()
	fmt.Println(y.Data(), x.Grad())

	_, err = autodiff.Pow(x, autodiff.NewValue(3))
	fmt.Println(errors.Is(err, autodiff.ErrInvalidExponent))
	// Output:
	// 8 12
	// true
}
