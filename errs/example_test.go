package errs_test

import (
	"errors"
	"fmt"

	"github.com/adamwoolhether/sitefx/errs"
)

func ExampleNew() {
	err := errs.New(errs.InvalidArgument, fmt.Errorf("interval must not be negative"))

	fmt.Println(err.Kind)
	fmt.Println(err.Error())
	// Output:
	// invalid argument
	// interval must not be negative
}

func ExampleIsKind() {
	err := fmt.Errorf("setup: %w", errs.New(errs.NotFound, errors.New("no #imageCarousel")))

	fmt.Println(errs.IsKind(err, errs.NotFound))
	fmt.Println(errs.IsKind(err, errs.InvalidArgument))
	// Output:
	// true
	// false
}

func ExampleFieldErrors_Fields() {
	fe := errs.FieldErrors{
		{Field: "typingSpeed", Err: "required"},
		{Field: "parallaxRate", Err: "invalid"},
	}

	fields := fe.Fields()
	fmt.Println(fields["typingSpeed"])
	fmt.Println(fields["parallaxRate"])
	// Output:
	// required
	// invalid
}
