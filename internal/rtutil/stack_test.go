package rtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_PushPopPeek(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Peek())

	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
}

func Test_Stack_ofMaps(t *testing.T) {
	var s Stack[map[int]int]
	s.Push(map[int]int{0: 1})
	s.Push(map[int]int{0: 2})

	top := s.Peek()
	assert.Equal(t, 2, top[0])
}
