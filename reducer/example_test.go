// SPDX-License-Identifier: MIT

package reducer_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vptk/reducer"
)

// ExampleDeriveBasicParams derives the dimension set of a 1:3 reducer.
func ExampleDeriveBasicParams() {
	bp := reducer.DeriveBasicParams(10, 5, 3, 100)
	fmt.Printf("e=%g Rin=%g rd=%g hc=%g Rsep_m=%g zg=%g zsh=%g\n",
		bp.E, bp.Rin, bp.Rd, bp.Hc, bp.RsepM, bp.Zg, bp.Zsh)
	// Output:
	// e=2 Rin=96 rd=88 hc=4.4 Rsep_m=93 zg=20 zsh=3
}

// ExampleCheckValidity reports the boundary an inner radius must not exceed.
func ExampleCheckValidity() {
	bp := reducer.DeriveBasicParams(10, 5, 3, 100)
	v := bp.Validity()
	fmt.Printf("passes=%t boundary=%.2f\n", v.Passes, v.Boundary)
	fmt.Println(errors.Is(v.Err(), reducer.ErrInvalidGeometry))
	// Output:
	// passes=false boundary=65.84
	// true
}
