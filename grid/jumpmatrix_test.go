package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJumpMatrixDefaultEmpty(t *testing.T) {
	m := NewJumpMatrix(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.True(t, m.Get(r, c).IsEmpty())
		}
	}
}

func TestJumpMatrixSetGet(t *testing.T) {
	m := NewJumpMatrix(3)
	m.Set(1, 2, ColFullEntry)
	assert.True(t, m.Get(1, 2).IsColFull())
	assert.True(t, m.Get(0, 0).IsEmpty())

	m.Set(2, 1, JumpTo(5))
	target, ok := m.Get(2, 1).Target()
	assert.True(t, ok)
	assert.Equal(t, 5, target)
}

func TestJumpMatrixCopyRowZeroLimitIsNoop(t *testing.T) {
	m := NewJumpMatrix(3)
	m.Set(0, 0, ColFullEntry)
	m.CopyRow(0, 1, 0)
	assert.True(t, m.Get(1, 0).IsEmpty())
}

func TestJumpMatrixCopyRowFullLine(t *testing.T) {
	m := NewJumpMatrix(3)
	m.Set(0, 0, ColFullEntry)
	m.Set(0, 1, JumpTo(7))
	m.CopyRow(0, 2, 3)
	assert.True(t, m.Get(2, 0).IsColFull())
	target, ok := m.Get(2, 1).Target()
	assert.True(t, ok)
	assert.Equal(t, 7, target)
	assert.True(t, m.Get(2, 2).IsEmpty())
}

func TestJumpMatrixCopyCol(t *testing.T) {
	m := NewJumpMatrix(3)
	m.Set(0, 0, ColFullEntry)
	m.Set(1, 0, JumpTo(9))
	m.CopyCol(0, 2, 3)
	assert.True(t, m.Get(0, 2).IsColFull())
	target, ok := m.Get(1, 2).Target()
	assert.True(t, ok)
	assert.Equal(t, 9, target)
	assert.True(t, m.Get(2, 2).IsEmpty())
}
