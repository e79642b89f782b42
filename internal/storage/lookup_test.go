package storage

import (
	"testing"

	"vegete-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNameIndexFallback(t *testing.T) {
	ix := BranchNameIndex([]models.Branch{{ID: "b1", Name: "Төв салбар"}})

	assert.Equal(t, "Төв салбар", ix.Name("b1"))
	assert.Equal(t, "-", ix.Name("no-such-id"))
	assert.Equal(t, "-", ix.Name(""))
}

func TestMemberNameIndexOrder(t *testing.T) {
	ix := MemberNameIndex([]models.Member{
		{ID: "m1", FirstName: "Бат", LastName: "Дорж"},
	})

	// Овог түрүүлж, нэр нь ардаа.
	assert.Equal(t, "Дорж Бат", ix.Name("m1"))
}
