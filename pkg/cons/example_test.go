package cons_test

import (
	"fmt"
	"os"

	"github.com/elves/cons/pkg/cons"
	"github.com/elves/cons/pkg/fn"
)

func Example() {
	l1 := cons.List(1, 2, 3)
	l2 := cons.List(4, 5, 6, 7)

	appended, _ := cons.Append(l1, l2)
	n, _ := cons.Length(appended)
	fmt.Println(n)
	cons.Print(os.Stdout, appended)

	reversed, _ := cons.Reverse(l1)
	cons.Print(os.Stdout, reversed)

	incremented, _ := cons.Map(fn.Inc, l1)
	cons.Print(os.Stdout, incremented)

	diff, _ := cons.Transform(fn.Minus, l1, cons.List(3, 2, 1))
	cons.Print(os.Stdout, diff)
	// Output:
	// 7
	// 1, 2, 3, 4, 5, 6, 7
	// 3, 2, 1
	// 2, 3, 4
	// -2, 0, 2
}

func ExampleTransform_lengthMismatch() {
	_, err := cons.Transform(fn.Plus, cons.List(1, 2, 3), cons.List(1, 2))
	fmt.Println(err)
	// Output:
	// transform: lists have different lengths: 3 and 2
}

func ExampleCar_empty() {
	_, err := cons.Car(cons.Empty)
	fmt.Println(err)
	// Output:
	// car: empty list
}

func ExampleCons() {
	pair := cons.Cons(1, 2)
	fmt.Println(pair)
	fmt.Println(cons.Cons(1, cons.Cons(2, cons.Empty)))
	// Output:
	// (1 . 2)
	// (1 2)
}
