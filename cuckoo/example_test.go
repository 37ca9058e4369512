package cuckoo_test

import (
	"fmt"

	"github.com/db47h/phonebook/cuckoo"
)

func ExampleDirectory() {
	d := cuckoo.New()
	d.Insert(cuckoo.Entry{Phone: "(555)111-0001", Name: "Ann"})
	d.Insert(cuckoo.Entry{Phone: "(555)222-0001", Name: "Bob"})

	fmt.Println(d.Lookup("(555)111-0001"))
	fmt.Println(d.Lookup("(555)999-9999"))
	d.Rehash()
	fmt.Println(d.Capacity(), d.Lookup("(555)222-0001"))

	// Output:
	// Ann
	// not found
	// 23 Bob
}
