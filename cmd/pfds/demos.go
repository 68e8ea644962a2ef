package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/pfds/persistent/bst"
	"github.com/npillmayer/pfds/persistent/list"
)

func showListConcat(w io.Writer) error {
	fmt.Fprintln(w, "Figure 2.5: Concatentating two lists")

	xs := list.Cons(0, list.Cons2(1, 2))
	ys := list.Cons(3, list.Cons2(4, 5))
	fmt.Fprintln(w, "Before")
	fmt.Fprintln(w, "xs : "+xs.String())
	fmt.Fprintln(w, "ys : "+ys.String())

	zs := xs.Concat(ys)
	fmt.Fprintln(w, "After")
	fmt.Fprintln(w, "zx : "+zs.String())
	return nil
}

func showListUpdate(w io.Writer) error {
	fmt.Fprintln(w, "Figure 2.6: Update an element of a list")

	xs := list.Cons(0, list.Cons(1, list.Cons(2, list.Cons2(3, 4))))
	ys, err := xs.Update(2, 7)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Before:")
	fmt.Fprintln(w, "xs : "+xs.String())
	fmt.Fprintln(w, "After:")
	fmt.Fprintln(w, "ys : "+ys.String())
	return nil
}

func showListSuffixes(w io.Writer) error {
	fmt.Fprintln(w, "Exersice 2.1: Suffixes")

	xs := list.Cons(1, list.Cons(2, list.Cons2(3, 4)))
	ys := list.Suffixes(xs)
	fmt.Fprintln(w, "in : "+xs.String())
	fmt.Fprintln(w, "out : "+ys.String())
	return nil
}

func showTreeInsert(w io.Writer, layout bool) error {
	fmt.Fprintln(w, "Figure 2.8 Insert")

	t := bst.Ordered[string]()
	for _, c := range []string{"d", "b", "a", "c", "g", "f", "h"} {
		t = t.Insert(c)
	}
	fmt.Fprintln(w, "in : "+t.String())
	t2 := t.Insert("e")
	fmt.Fprintln(w, "out : "+t2.String())
	if !t2.Valid() {
		return fmt.Errorf("search tree property violated in %s", t2)
	}
	if layout {
		fmt.Fprint(w, t.Layout())
		fmt.Fprint(w, t2.Layout())
	}
	return nil
}
