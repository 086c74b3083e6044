package list

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xchain/lib/infra"
)

func traverse[N comparable, T any](head N, value func(N) T, next func(N) N) iter.Seq[T] {
	var none N
	return func(yield func(T) bool) {
		for it := head; it != none; it = next(it) {
			if !yield(value(it)) {
				return
			}
		}
	}
}

// checkInput rejects the nil slice and the empty slice separately,
// both of them have no element 0 to be the head.
func checkInput[T any](seq []T, listName string) error {
	if seq == nil {
		return infra.WrapErrorStackWithMessage(ErrNullInput, "["+listName+"] unable to convert")
	} else if len(seq) == 0 {
		return infra.WrapErrorStackWithMessage(ErrEmptyInput, "["+listName+"] unable to convert")
	}
	return nil
}

// LengthOf counts the nodes of c. It returns 0 if c is nil or an empty chain.
func LengthOf[T any](c Chain[T]) int64 {
	if c == nil {
		return 0
	}
	var length int64
	for range c.All() {
		length++
	}
	return length
}

func Values[T any](c Chain[T]) []T {
	if c == nil {
		return []T{}
	}
	values := make([]T, 0, 8)
	for v := range c.All() {
		values = append(values, v)
	}
	return values
}

// Print writes the values of c in order, separated by a space
// and terminated by a newline.
func Print[T any](w io.Writer, c Chain[T]) error {
	if w == nil {
		return infra.NewErrorStack("[linked-list] print to nil writer")
	}
	line := strings.Join(lo.Map(Values(c), func(v T, _ int) string {
		return fmt.Sprint(v)
	}), " ")
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return infra.WrapErrorStackWithMessage(err, "[linked-list] print")
	}
	return nil
}
