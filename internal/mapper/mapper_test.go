package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-comments/internal/domain"
	"blog-comments/internal/mapper"
)

func TestToEntity(t *testing.T) {
	dto := domain.CommentDTO{ID: 5, Name: "Ann", Mail: "a@x.com", Body: "hi"}

	c := mapper.ToEntity(dto)

	require.NotNil(t, c)
	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, "Ann", c.Name)
	assert.Equal(t, "a@x.com", c.Mail)
	assert.Equal(t, "hi", c.Body)
	assert.Zero(t, c.PublicationID)
	assert.Nil(t, c.Publication)
}

func TestToDTO(t *testing.T) {
	c := &domain.Comment{
		ID:            9,
		Name:          "Bob",
		Mail:          "b@x.com",
		Body:          "nice post",
		PublicationID: 3,
		Publication:   &domain.Publication{ID: 3},
	}

	dto := mapper.ToDTO(c)

	assert.Equal(t, domain.CommentDTO{ID: 9, Name: "Bob", Mail: "b@x.com", Body: "nice post"}, dto)
}

func TestToDTOs(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		comments := []domain.Comment{
			{ID: 3, Name: "c"},
			{ID: 1, Name: "a"},
			{ID: 2, Name: "b"},
		}

		dtos := mapper.ToDTOs(comments)

		require.Len(t, dtos, 3)
		assert.Equal(t, int64(3), dtos[0].ID)
		assert.Equal(t, int64(1), dtos[1].ID)
		assert.Equal(t, int64(2), dtos[2].ID)
	})

	t.Run("empty input gives empty non-nil slice", func(t *testing.T) {
		dtos := mapper.ToDTOs(nil)

		assert.NotNil(t, dtos)
		assert.Empty(t, dtos)
	})
}

func TestApplyUpdate(t *testing.T) {
	c := &domain.Comment{ID: 7, Name: "old", Mail: "old@x.com", Body: "old body", PublicationID: 2}

	mapper.ApplyUpdate(c, domain.CommentDTO{ID: 99, Name: "new", Mail: "new@x.com", Body: "new body"})

	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, int64(2), c.PublicationID)
	assert.Equal(t, "new", c.Name)
	assert.Equal(t, "new@x.com", c.Mail)
	assert.Equal(t, "new body", c.Body)
}
