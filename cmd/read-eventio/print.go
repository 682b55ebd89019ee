package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-eventio/eventio"
)

// printTree writes every object of f, indented two spaces per depth.
func printTree(f *eventio.File, w io.Writer, colored bool) error {
	name := nameColor(colored)

	return eventio.Walk(f, func(obj eventio.Object, depth int) error {
		indent := strings.Repeat("  ", depth)

		if rec, ok := obj.(eventio.StringRecord); ok {
			ts, text, err := rec.Parse(f)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s%d %s\n", indent, ts, text); err != nil {
				return err
			}
			// the parsed bytes are the start of its children
			if obj.Header().IsContainer() {
				return eventio.ErrSkipChildren
			}
			return nil
		}

		rendered := obj.String()
		_, err := fmt.Fprintf(w, "%s%s%s\n", indent, name(obj.Name()), strings.TrimPrefix(rendered, obj.Name()))
		return err
	})
}
