package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_ReadIsPublic(t *testing.T) {
	resources := []Resource{
		User{ID: 7},
		MediaItem{ID: 3, OwnerID: 7},
		Comment{ID: 9, AuthorID: 7, MediaOwnerID: 8},
	}

	for _, res := range resources {
		d := Authorize(999, ActionRead, res)
		assert.True(t, d.Allowed, "read should be allowed for %T", res)
	}
}

func TestAuthorize_UserSelfOnly(t *testing.T) {
	assert.True(t, Authorize(7, ActionUpdate, User{ID: 7}).Allowed)
	assert.True(t, Authorize(7, ActionDelete, User{ID: 7}).Allowed)

	d := Authorize(8, ActionUpdate, User{ID: 7})
	assert.False(t, d.Allowed)
	assert.Equal(t, "not_account_owner", d.Reason)

	assert.False(t, Authorize(8, ActionDelete, User{ID: 7}).Allowed)
}

func TestAuthorize_MediaOwnerOnly(t *testing.T) {
	media := MediaItem{ID: 3, OwnerID: 1}

	assert.True(t, Authorize(1, ActionUpdate, media).Allowed)
	assert.True(t, Authorize(1, ActionDelete, media).Allowed)
	assert.False(t, Authorize(2, ActionUpdate, media).Allowed)
	assert.False(t, Authorize(2, ActionDelete, media).Allowed)
}

func TestAuthorize_CommentUpdateAuthorOnly(t *testing.T) {
	c := Comment{ID: 5, AuthorID: 2, MediaOwnerID: 1}

	assert.True(t, Authorize(2, ActionUpdate, c).Allowed)
	// media owner may moderate (delete) but not edit
	assert.False(t, Authorize(1, ActionUpdate, c).Allowed)
	assert.False(t, Authorize(3, ActionUpdate, c).Allowed)
}

func TestAuthorize_CommentDeleteAuthorOrMediaOwner(t *testing.T) {
	c := Comment{ID: 5, AuthorID: 2, MediaOwnerID: 1}

	assert.True(t, Authorize(2, ActionDelete, c).Allowed, "author can delete")
	assert.True(t, Authorize(1, ActionDelete, c).Allowed, "media owner can delete")

	d := Authorize(3, ActionDelete, c)
	assert.False(t, d.Allowed, "third party cannot delete")
	assert.Equal(t, "not_comment_author", d.Reason)
}
