package list

import (
	"bytes"
	"container/list"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xchain/lib/infra"
)

func TestConvertToSinglyLinkedList(t *testing.T) {
	testcases := []struct {
		name string
		seq  []int
	}{
		{"standard", []int{12, 4, 6, 7}},
		{"demo", []int{12, 5, 6, 8}},
		{"single element", []int{42}},
		{"seven elements", []int{1, 2, 3, 4, 5, 6, 7}},
		{"larger", lo.RangeFrom(1, 15)},
		{"duplicates", []int{3, 3, 3, 0, -1}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			origin := append([]int(nil), tc.seq...)
			head, err := ConvertToSinglyLinkedList(tc.seq)
			require.NoError(tt, err)
			require.NotNil(tt, head)
			require.Equal(tt, tc.seq, origin)

			require.Equal(tt, tc.seq, Values[int](head))
			require.Equal(tt, int64(len(tc.seq)), LengthOf[int](head))
			require.Equal(tt, int64(len(tc.seq)), head.Len())

			var (
				it  = head
				idx = 0
			)
			for it != nil {
				require.Equal(tt, tc.seq[idx], it.Value)
				it = it.Next()
				idx++
			}
			require.Equal(tt, len(tc.seq), idx)
		})
	}
}

func TestConvertToSinglyLinkedList_SingleElement(t *testing.T) {
	head, err := ConvertToSinglyLinkedList([]int{99})
	require.NoError(t, err)
	require.Equal(t, 99, head.GetValue())
	require.False(t, head.HasNext())
	require.Nil(t, head.Next())
	next, ok := head.NextOk()
	require.False(t, ok)
	require.Nil(t, next)
	require.Equal(t, int64(1), head.Len())
}

func TestConvertToSinglyLinkedList_SameAsStdList(t *testing.T) {
	seq := []string{"a", "b", "c", "d", "e"}
	head, err := ConvertToSinglyLinkedList(seq)
	require.NoError(t, err)

	slist := list.New()
	for _, v := range seq {
		slist.PushBack(v)
	}
	assert.Equal(t, head.Len(), int64(slist.Len()))

	headItr := head
	slistItr := slist.Front()
	for slistItr != nil {
		assert.Equal(t, headItr.Value, slistItr.Value)
		slistItr = slistItr.Next()
		headItr = headItr.Next()
	}
	assert.Nil(t, headItr)
}

func TestConvertToLinkedList_InvalidInput(t *testing.T) {
	testcases := []struct {
		name    string
		convert func() (Chain[int], error)
		want    error
		notWant error
	}{
		{
			name: "singly empty",
			convert: func() (Chain[int], error) {
				return ConvertToSinglyLinkedList([]int{})
			},
			want:    ErrEmptyInput,
			notWant: ErrNullInput,
		},
		{
			name: "singly nil",
			convert: func() (Chain[int], error) {
				return ConvertToSinglyLinkedList[int](nil)
			},
			want:    ErrNullInput,
			notWant: ErrEmptyInput,
		},
		{
			name: "doubly empty",
			convert: func() (Chain[int], error) {
				return ConvertToDoublyLinkedList(make([]int, 0, 4))
			},
			want:    ErrEmptyInput,
			notWant: ErrNullInput,
		},
		{
			name: "doubly nil",
			convert: func() (Chain[int], error) {
				return ConvertToDoublyLinkedList[int](nil)
			},
			want:    ErrNullInput,
			notWant: ErrEmptyInput,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			_, err := tc.convert()
			require.Error(tt, err)
			require.ErrorIs(tt, err, tc.want)
			require.False(tt, errors.Is(err, tc.notWant))

			var es infra.ErrorStack
			require.True(tt, errors.As(err, &es))

			var le ListErr
			require.True(tt, errors.As(err, &le))
			require.Equal(tt, tc.want, le)
		})
	}
}

func TestInsertAtHead(t *testing.T) {
	head, err := ConvertToSinglyLinkedList([]int{12, 5, 6, 8})
	require.NoError(t, err)
	oldHead := head

	head = InsertAtHead(head, 10)
	require.Equal(t, []int{10, 12, 5, 6, 8}, Values[int](head))
	require.Equal(t, int64(5), head.Len())
	require.Same(t, oldHead, head.Next())
	// The old head still reaches the remainder only.
	require.Equal(t, []int{12, 5, 6, 8}, Values[int](oldHead))

	head = InsertAtHead(head, 1)
	require.Equal(t, []int{1, 10, 12, 5, 6, 8}, Values[int](head))
}

func TestInsertAtHead_EmptyList(t *testing.T) {
	var head *SinglyNode[string]
	require.Equal(t, int64(0), head.Len())
	require.False(t, head.HasNext())

	head = InsertAtHead(head, "x")
	require.NotNil(t, head)
	require.False(t, head.HasNext())
	require.Equal(t, []string{"x"}, Values[string](head))

	head = InsertAtHead(head, "y")
	require.Equal(t, []string{"y", "x"}, Values[string](head))
}

func TestConvertToDoublyLinkedList(t *testing.T) {
	testcases := [][]int{
		{12, 5, 6, 8},
		{99},
		{1, 2, 3, 4, 5, 6, 7},
		lo.Range(64),
	}
	for _, seq := range testcases {
		head, err := ConvertToDoublyLinkedList(seq)
		require.NoError(t, err)
		require.Equal(t, seq, Values[int](head))
		require.Equal(t, int64(len(seq)), head.Len())

		require.False(t, head.HasBack())
		back, ok := head.BackOk()
		require.False(t, ok)
		require.Nil(t, back)

		var tail *DoublyNode[int]
		for it := head; it != nil; it = it.Next() {
			if next, ok := it.NextOk(); ok {
				require.Same(t, it, next.Back())
				require.True(t, next.HasBack())
			} else {
				tail = it
			}
		}
		require.NotNil(t, tail)
		require.False(t, tail.HasNext())

		// The back links walk the chain in reverse.
		reversed := make([]int, 0, len(seq))
		for it := tail; it != nil; it = it.Back() {
			reversed = append(reversed, it.GetValue())
		}
		require.Equal(t, lo.Reverse(append([]int(nil), seq...)), reversed)
	}
}

func TestConvertToDoublyLinkedList_SingleElement(t *testing.T) {
	head, err := ConvertToDoublyLinkedList([]int{99})
	require.NoError(t, err)
	require.Equal(t, int64(1), LengthOf[int](head))
	require.Nil(t, head.Next())
	require.Nil(t, head.Back())
	require.False(t, head.HasNext())
	require.False(t, head.HasBack())
}

func TestTraverse_Idempotent(t *testing.T) {
	singly, err := ConvertToSinglyLinkedList([]int{3, 1, 4, 1, 5})
	require.NoError(t, err)
	doubly, err := ConvertToDoublyLinkedList([]int{3, 1, 4, 1, 5})
	require.NoError(t, err)

	for _, c := range []Chain[int]{singly, doubly} {
		first := Values(c)
		second := Values(c)
		require.Equal(t, first, second)
		require.Equal(t, []int{3, 1, 4, 1, 5}, second)
	}
}

func TestTraverse_Break(t *testing.T) {
	head, err := ConvertToSinglyLinkedList(lo.Range(10))
	require.NoError(t, err)

	visited := make([]int, 0, 3)
	for v := range head.All() {
		if v == 3 {
			break
		}
		visited = append(visited, v)
	}
	require.Equal(t, []int{0, 1, 2}, visited)
	require.Equal(t, int64(10), head.Len())
}

func TestTraverse_NilHead(t *testing.T) {
	var (
		singly *SinglyNode[int]
		doubly *DoublyNode[int]
	)
	require.Empty(t, Values[int](singly))
	require.Empty(t, Values[int](doubly))
	require.Empty(t, Values[int](nil))
	require.Equal(t, int64(0), LengthOf[int](nil))
	require.Equal(t, int64(0), doubly.Len())
	require.Equal(t, 0, singly.GetValue())
	require.Nil(t, doubly.Back())
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestPrint(t *testing.T) {
	buf := &bytes.Buffer{}

	singly, err := ConvertToSinglyLinkedList([]int{12, 5, 6, 8})
	require.NoError(t, err)
	require.NoError(t, Print[int](buf, singly))
	require.Equal(t, "12 5 6 8\n", buf.String())

	buf.Reset()
	singly = InsertAtHead(singly, 10)
	require.NoError(t, Print[int](buf, singly))
	require.Equal(t, "10 12 5 6 8\n", buf.String())

	buf.Reset()
	doubly, err := ConvertToDoublyLinkedList([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, Print[string](buf, doubly))
	require.Equal(t, "a b\n", buf.String())

	buf.Reset()
	require.NoError(t, Print[int](buf, (*SinglyNode[int])(nil)))
	require.Equal(t, "\n", buf.String())

	err = Print[int](errWriter{}, singly)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink closed")

	require.Error(t, Print[int](nil, singly))
}
