package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPairOrdersEndpoints(t *testing.T) {
	a1, b1 := CanonicalPair(2, 9)
	a2, b2 := CanonicalPair(9, 2)

	assert.Equal(t, uint(2), a1)
	assert.Equal(t, uint(9), b1)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestCanonicalPairEqualInputs(t *testing.T) {
	a, b := CanonicalPair(4, 4)
	assert.Equal(t, uint(4), a)
	assert.Equal(t, uint(4), b)
}

func TestGroupRoleCanManage(t *testing.T) {
	assert.True(t, GroupOwner.CanManage())
	assert.True(t, GroupAdmin.CanManage())
	assert.False(t, GroupMember.CanManage())
}
