package model

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBeforeCreateAssignsUUID(t *testing.T) {
	m := &Message{}
	require.NoError(t, m.BeforeCreate(nil))
	_, err := uuid.Parse(m.ID)
	assert.NoError(t, err)

	fixed := &Message{ID: "5b2d9ef0-0a49-4a26-b1f1-6f1f0b0a9c77"}
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "5b2d9ef0-0a49-4a26-b1f1-6f1f0b0a9c77", fixed.ID)
}

// Message must map CreatedAt to exactly one column, an embedded base would
// add a shadowed duplicate.
func TestMessageHasSingleCreatedAtField(t *testing.T) {
	count := 0
	typ := reflect.TypeOf(Message{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous {
			for j := 0; j < f.Type.NumField(); j++ {
				if f.Type.Field(j).Name == "CreatedAt" {
					count++
				}
			}
			continue
		}
		if f.Name == "CreatedAt" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
