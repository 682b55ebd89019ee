package eventio

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

var (
	// ErrStopWalk can be returned from a WalkFunc to stop walking without an error.
	ErrStopWalk = errors.New("walk stopped")

	// ErrSkipChildren can be returned from a WalkFunc to skip the children
	// of the object just visited.
	ErrSkipChildren = errors.New("skip children")
)

// WalkFunc is called for each object during traversal. depth is 0 for
// top-level objects and grows by one per container level.
//
// fn may read the payload of obj, but reading a container's payload consumes
// the bytes its children live in, so return ErrSkipChildren afterwards.
type WalkFunc func(obj Object, depth int) error

// Walk visits every object of f depth-first, in stream order, starting at
// the next top-level object.
//
// Example:
//
//	err := eventio.Walk(f, func(obj eventio.Object, depth int) error {
//	    fmt.Println(strings.Repeat("  ", depth) + obj.String())
//	    return nil
//	})
func Walk(f *File, fn WalkFunc) error {
	for {
		obj, err := f.NextTopLevel()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := walkTree(f, obj, 0, fn); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}
	}
}

// WalkObject visits root and everything nested in it, with root at depth 0.
func WalkObject(f *File, root Object, fn WalkFunc) error {
	err := walkTree(f, root, 0, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

type walkFrame struct {
	obj   Object
	depth int
}

// walkTree keeps open containers on an explicit stack so that nesting depth
// is bounded by memory, not by the goroutine stack.
func walkTree(f *File, root Object, depth int, fn WalkFunc) error {
	if err := fn(root, depth); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	if !root.Header().IsContainer() {
		return nil
	}

	stack := []walkFrame{{obj: root, depth: depth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.obj.HasNext() {
			stack = stack[:len(stack)-1]
			continue
		}

		child, err := top.obj.ReadNextChild(f)
		if errors.Is(err, ErrEndOfContainer) {
			stack = stack[:len(stack)-1]
			continue
		}
		if err != nil {
			return err
		}

		err = fn(child, top.depth+1)
		if errors.Is(err, ErrSkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if child.Header().IsContainer() {
			stack = append(stack, walkFrame{obj: child, depth: top.depth + 1})
			f.log.Debug("entering container",
				zap.Stringer("object", child), zap.Int("depth", top.depth+1))
		}
	}
	return nil
}
