// ABOUTME: Optimistic append mutation for comments
// ABOUTME: Prepends a provisional record built from the local identity

package optimistic

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/session"
	"github.com/google/uuid"
)

// ErrEmptyComment is returned for content that is empty after trimming.
// Validation happens before any network call.
var ErrEmptyComment = errors.New("comment cannot be empty")

// ValidateComment trims the content and rejects empty comments.
func ValidateComment(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyComment
	}
	return trimmed, nil
}

// ProvisionalComment builds the record shown before the server confirms:
// a client-generated id and timestamp, attributed to the locally derived
// identity. The provisional record is treated as final on success; if the
// request fails the caller removes it again with RemoveComment, so toggles
// and appends share one rollback policy.
func ProvisionalComment(identity session.Identity, content string, now time.Time) client.Comment {
	return client.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: now,
		User: client.User{
			ID:    identity.ID,
			Name:  identity.Name,
			Email: identity.Email,
		},
	}
}

// PrependComment inserts the comment at the head of the collection.
func PrependComment(s PostState, c client.Comment) PostState {
	comments := make([]client.Comment, 0, len(s.Comments)+1)
	comments = append(comments, c)
	comments = append(comments, s.Comments...)
	s.Comments = comments
	return s
}

// RemoveComment drops the comment with the given id, if present.
func RemoveComment(s PostState, id string) PostState {
	comments := make([]client.Comment, 0, len(s.Comments))
	for _, c := range s.Comments {
		if c.ID != id {
			comments = append(comments, c)
		}
	}
	s.Comments = comments
	return s
}

// SortedComments returns the comments newest first. Display order is always
// recomputed from timestamps at render time, never taken from insertion
// order, so a provisional record whose client clock races the server's
// still lands in the right place. The sort is stable: equal timestamps keep
// their relative order.
func SortedComments(comments []client.Comment) []client.Comment {
	out := cloneComments(comments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
