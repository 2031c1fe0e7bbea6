package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "hall", CategoryFor("auditorium"))
	assert.Equal(t, "lecture", CategoryFor("lecture"))
	assert.Equal(t, defaultRoomCategory, CategoryFor("observatory"))
	assert.Equal(t, defaultRoomCategory, CategoryFor(""))
}
