package contrasts_test

import (
	"fmt"

	"github.com/katalvlaran/lvcontrast/contrasts"
)

// ExampleNew builds treatment contrasts for a three-level factor.
func ExampleNew() {
	cm, err := contrasts.New(contrasts.Treatment(contrasts.WithBase("low")), []string{"low", "mid", "high"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(cm)
	fmt.Println(cm.CoefNames("dose"))

	// Output:
	// treatment contrasts [mid high]
	// low: [0 0]
	// mid: [1 0]
	// high: [0 1]
	// [dose - mid dose - high]
}

// ExampleMaterialize expands coded observations whose level order differs
// from the contrast matrix.
func ExampleMaterialize() {
	cm, _ := contrasts.New(contrasts.Sum[string](), []string{"a", "b", "c"})

	// The data stores its levels as c, a, b.
	cols, err := contrasts.Materialize([]int{0, 1, 2, 1}, []string{"c", "a", "b"}, cm)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(cols)

	// Output:
	// [0, 1]
	// [-1, -1]
	// [1, 0]
	// [-1, -1]
}

// ExamplePromote upgrades Helmert coding to full-rank indicators.
func ExamplePromote() {
	cm, _ := contrasts.New(contrasts.Helmert[string](), []string{"x", "y", "z"})
	fmt.Print(cm.Matrix())

	full, _ := contrasts.Promote(cm)
	fmt.Println(full.TermNames())

	// Output:
	// [-1, -1]
	// [1, -1]
	// [0, 2]
	// [x y z]
}
