package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSet(t *testing.T) {
	s := NewIDSet(4, 2, 4, 7)
	assert.Equal(t, []int{4, 2, 7}, s.IDs())
	assert.Equal(t, 3, s.Len())

	assert.False(t, s.Add(2))
	assert.True(t, s.Add(9))
	assert.True(t, s.Has(9))

	assert.True(t, s.Promote(7))
	assert.Equal(t, []int{7, 4, 2, 9}, s.IDs())
	assert.False(t, s.Promote(7), "already in front")

	assert.True(t, s.Promote(1))
	assert.Equal(t, []int{1, 7, 4, 2, 9}, s.IDs())
}

func TestIDSetIDsIsACopy(t *testing.T) {
	s := NewIDSet(1, 2)
	ids := s.IDs()
	ids[0] = 42
	assert.Equal(t, []int{1, 2}, s.IDs())
	assert.NotNil(t, NewIDSet().IDs())
}
