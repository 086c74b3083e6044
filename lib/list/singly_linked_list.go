package list

const singlyLinkedListName = "singly-linked-list"

// ConvertToSinglyLinkedList builds a chain in the order of seq and
// returns its head. The seq is not modified.
func ConvertToSinglyLinkedList[T any](seq []T) (*SinglyNode[T], error) {
	if err := checkInput(seq, singlyLinkedListName); err != nil {
		return nil, err
	}

	head := NewSinglyNode(seq[0])
	prev := head
	for i := 1; i < len(seq); i++ {
		prev.next = NewSinglyNode(seq[i])
		prev = prev.next
	}
	return head, nil
}

// InsertAtHead links a new node with value v in front of head and
// returns it as the new head. A nil head is an empty list.
// Callers must use the returned head afterward.
func InsertAtHead[T any](head *SinglyNode[T], v T) *SinglyNode[T] {
	newHead := NewSinglyNode(v)
	newHead.next = head
	return newHead
}
