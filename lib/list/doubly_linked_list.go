package list

const doublyLinkedListName = "doubly-linked-list"

// ConvertToDoublyLinkedList builds a chain in the order of seq and
// returns its head. For every node n with successor m, m.Back() is n.
func ConvertToDoublyLinkedList[T any](seq []T) (*DoublyNode[T], error) {
	if err := checkInput(seq, doublyLinkedListName); err != nil {
		return nil, err
	}

	head := NewDoublyNode(seq[0])
	prev := head
	for i := 1; i < len(seq); i++ {
		e := NewDoublyNode(seq[i])
		e.back = prev
		prev.next = e
		prev = e
	}
	return head, nil
}
