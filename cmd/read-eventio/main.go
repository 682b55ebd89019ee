// Command read-eventio prints the object tree of an eventio file.
package main

import (
	"github.com/robert-malhotra/go-eventio/internal/cmderr"
)

func main() {
	err := newCommand().Execute()
	cmderr.ExitOnErr(err)
}
