package sanitizer_test

import (
	"fmt"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/sanitizer"
)

func ExampleStripTags() {
	fmt.Printf("%q\n", sanitizer.StripTags(field.Text("<p>oh hai.</p><p>goodbye</p>")))
	// Output: "oh hai.  goodbye"
}

func ExamplePriceLike() {
	fmt.Println(sanitizer.PriceLike(field.Text("19.5")))
	fmt.Printf("%q\n", sanitizer.PriceLike(field.Text("19.5.34")))
	// Output:
	// 19.50
	// ""
}

func ExampleFormatZipcode() {
	fmt.Println(sanitizer.FormatZipcode(field.Text("9021012")))
	// Output: 00902-1012
}

func ExampleSlugify() {
	fmt.Println(sanitizer.Slugify(field.Text(`"oh_hai!"`)))
	// Output: oh-hai
}

func ExampleExtractNumbersSafe() {
	fmt.Println(sanitizer.ExtractNumbersSafe(field.Text("-3.14"), true))
	// Output: -3.14
}

func ExampleSplitTaxonomyTags() {
	fmt.Printf("%q\n", sanitizer.SplitTaxonomyTags(field.Text("Hi, There friend, How goes it?")))
	// Output: ["hi" "there friend" "how goes it"]
}
