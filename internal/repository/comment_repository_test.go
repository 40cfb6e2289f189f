package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-comments/internal/domain"
	"blog-comments/internal/repository"
)

func TestGormCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewGormCommentRepository(testDB.DB)
	ctx := context.Background()

	newComment := func(p domain.Publication, name string) *domain.Comment {
		return &domain.Comment{
			Name:        name,
			Mail:        name + "@example.com",
			Body:        "Comment body from " + name,
			Publication: &p,
		}
	}

	t.Run("save inserts and assigns id", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")

		c := newComment(p, "ann")
		err := repo.Save(ctx, c)

		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.Equal(t, p.ID, c.PublicationID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("save does not touch the publication", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")

		c := newComment(p, "ann")
		c.Publication.Title = "changed through comment"
		require.NoError(t, repo.Save(ctx, c))

		var stored domain.Publication
		require.NoError(t, testDB.DB.First(&stored, p.ID).Error)
		assert.Equal(t, "Post", stored.Title)
	})

	t.Run("save with unknown publication fails on foreign key", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")

		c := &domain.Comment{Name: "x", Mail: "x@example.com", Body: "orphan", PublicationID: 999}
		err := repo.Save(ctx, c)

		assert.Error(t, err)
	})

	t.Run("find by id", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		c := newComment(p, "bob")
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, "bob", found.Name)
		assert.Equal(t, "bob@example.com", found.Mail)
		assert.Equal(t, p.ID, found.PublicationID)
	})

	t.Run("find by id returns nil when missing", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")

		found, err := repo.FindByID(ctx, 777)

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find by publication id only returns that publication's comments", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		a := testDB.CreatePublication(t, "A")
		b := testDB.CreatePublication(t, "B")

		for _, name := range []string{"a1", "a2", "a3"} {
			require.NoError(t, repo.Save(ctx, newComment(a, name)))
		}
		require.NoError(t, repo.Save(ctx, newComment(b, "b1")))

		comments, err := repo.FindByPublicationID(ctx, a.ID)

		require.NoError(t, err)
		require.Len(t, comments, 3)
		for _, c := range comments {
			assert.Equal(t, a.ID, c.PublicationID)
		}
	})

	t.Run("find by publication id returns empty slice", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Quiet post")

		comments, err := repo.FindByPublicationID(ctx, p.ID)

		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("save updates existing comment in place", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		c := newComment(p, "carol")
		require.NoError(t, repo.Save(ctx, c))
		originalID := c.ID

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		loaded.Name = "carol-updated"
		loaded.Body = "edited"
		require.NoError(t, repo.Save(ctx, loaded))

		reloaded, err := repo.FindByID(ctx, originalID)
		require.NoError(t, err)
		require.NotNil(t, reloaded)
		assert.Equal(t, "carol-updated", reloaded.Name)
		assert.Equal(t, "edited", reloaded.Body)
		assert.Equal(t, p.ID, reloaded.PublicationID)

		comments, err := repo.FindByPublicationID(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("save update leaves publication untouched", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		other := testDB.CreatePublication(t, "Other")
		c := newComment(p, "fay")
		require.NoError(t, repo.Save(ctx, c))

		c.PublicationID = other.ID
		c.Mail = "fay@x.com"
		require.NoError(t, repo.Save(ctx, c))

		reloaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded)
		assert.Equal(t, "fay@x.com", reloaded.Mail)
		assert.Equal(t, p.ID, reloaded.PublicationID)
	})

	t.Run("save update of a deleted comment does not recreate it", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		c := newComment(p, "gus")
		require.NoError(t, repo.Save(ctx, c))
		require.NoError(t, repo.Delete(ctx, c))

		c.Body = "edited after delete"
		err := repo.Save(ctx, c)

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err, domain.ResourceComment))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete removes the comment", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		c := newComment(p, "dave")
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, repo.Delete(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("comments are removed with their publication", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "publications")
		p := testDB.CreatePublication(t, "Post")
		c := newComment(p, "erin")
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, testDB.DB.Delete(&domain.Publication{}, p.ID).Error)

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
