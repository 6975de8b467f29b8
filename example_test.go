package polysolve_test

import (
	"fmt"
	"os"

	"github.com/njchilds90/polysolve"
)

// ExampleSolve prints the full derivation of a double root.
func ExampleSolve() {
	r, err := polysolve.Solve("x^2 + 2x + 1 = 0")
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = polysolve.WriteTrace(os.Stdout, r)
	// Output:
	// Step 1 : convert to ax^2+bx+c=0
	// x^2+2x^1+1=0
	// Step 2 : a!=0 => quadratic
	// Delta: 0
	// Delta=0 => x=-b/2a
	// Solution: x=-1
}

// ExampleSolve_complex shows roots kept in symbolic form.
func ExampleSolve_complex() {
	r, _ := polysolve.Solve("x^2 + x + 1 = 0")
	fmt.Println(r.Solution.Case)
	fmt.Println(r.Solution)
	// Output:
	// quadratic_complex
	// x1=(-1+i*sqrt(3))/2, x2=(-1-i*sqrt(3))/2
}

func ExampleFormat() {
	m, _ := polysolve.ParseEquation("3 - x^2 = 2x")
	fmt.Println(polysolve.Format(m))
	// Output: -x^2-2x^1+3=0
}

func ExamplePrettySqrt() {
	fmt.Println(polysolve.PrettySqrt(4))
	fmt.Println(polysolve.PrettySqrt(3))
	// Output:
	// 2
	// sqrt(3)
}
