// ABOUTME: Optimistic toggle mutations for likes and favorites
// ABOUTME: Flip locally first, then confirm or roll back on the response

package optimistic

import (
	"errors"
	"time"

	"github.com/blogify/blogctl/internal/client"
)

// ErrToggleInFlight is returned when a toggle is begun while the previous
// request for the same view is still pending. Serializing toggles per view
// removes the out-of-order-response race a double click would otherwise
// produce.
var ErrToggleInFlight = errors.New("toggle request already in flight")

// ToggleKind selects which boolean a Toggle drives.
type ToggleKind int

const (
	ToggleLike ToggleKind = iota
	ToggleFavorite
)

// PostState is the locally held, mutable copy of a post's interaction state.
// All transitions below are value-in, value-out: the caller owns the current
// state and replaces it with whatever a transition returns.
type PostState struct {
	IsLiked     bool
	IsFavorited bool
	Likes       []client.Like
	Favorites   []client.Favorite
	Comments    []client.Comment
}

// StateFor derives the interaction state of a freshly fetched post for the
// given viewer. An empty userID derives the anonymous view (nothing liked).
func StateFor(p *client.Post, userID string) PostState {
	s := PostState{
		Likes:     cloneLikes(p.Likes),
		Favorites: cloneFavorites(p.Favorites),
		Comments:  cloneComments(p.Comments),
	}
	if userID != "" {
		s.IsLiked = p.LikedBy(userID)
		s.IsFavorited = p.FavoritedByUser(userID)
	}
	return s
}

// Toggle tracks one toggle-style mutation through its
// idle -> pending -> idle lifecycle.
type Toggle struct {
	kind    ToggleKind
	pending bool
	userID  string
	prev    PostState
}

// NewToggle creates a toggle controller of the given kind.
func NewToggle(kind ToggleKind) *Toggle {
	return &Toggle{kind: kind}
}

// Pending reports whether a request is in flight.
func (t *Toggle) Pending() bool {
	return t.pending
}

// Begin flips the toggle locally and snapshots the prior state for
// rollback. The flipped state must be displayed immediately: the network
// call follows, it never gates the UI. The caller is responsible for
// refusing unauthenticated attempts before calling Begin; no optimistic
// flip is ever shown for an action that cannot succeed.
func (t *Toggle) Begin(s PostState, userID, postID string, now time.Time) (PostState, error) {
	if t.pending {
		return s, ErrToggleInFlight
	}
	t.pending = true
	t.userID = userID
	t.prev = cloneState(s)

	switch t.kind {
	case ToggleLike:
		if s.IsLiked {
			s.Likes = removeLike(s.Likes, userID)
		} else {
			s.Likes = append(cloneLikes(s.Likes), client.Like{
				ID:        userID + "-" + postID,
				UserID:    userID,
				PostID:    postID,
				CreatedAt: now,
			})
		}
		s.IsLiked = !s.IsLiked
	case ToggleFavorite:
		if s.IsFavorited {
			s.Favorites = removeFavorite(s.Favorites, userID)
		} else {
			s.Favorites = append(cloneFavorites(s.Favorites), client.Favorite{UserID: userID})
		}
		s.IsFavorited = !s.IsFavorited
	}
	return s, nil
}

// Confirm settles the pending toggle. When the response carries an
// authoritative collection it replaces the synthetic local one and the
// boolean is recomputed from it: the server wins on conflict.
func (t *Toggle) Confirm(s PostState, resp *client.ToggleResponse) PostState {
	t.pending = false
	if resp == nil {
		return s
	}

	switch t.kind {
	case ToggleLike:
		if resp.Likes != nil {
			s.Likes = cloneLikes(resp.Likes)
			s.IsLiked = likedBy(s.Likes, t.userID)
		}
	case ToggleFavorite:
		if resp.Favorites != nil {
			s.Favorites = cloneFavorites(resp.Favorites)
			s.IsFavorited = favoritedBy(s.Favorites, t.userID)
		}
	}
	return s
}

// Fail rolls the pending toggle back to the exact pre-toggle state. With
// no toggle pending there is nothing to roll back and the state is
// returned untouched; a late response must never replace state it did
// not originate from.
func (t *Toggle) Fail(s PostState) PostState {
	if !t.pending {
		return s
	}
	t.pending = false
	return t.prev
}

func likedBy(likes []client.Like, userID string) bool {
	for _, l := range likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

func favoritedBy(favorites []client.Favorite, userID string) bool {
	for _, f := range favorites {
		if f.UserID == userID {
			return true
		}
	}
	return false
}

func removeLike(likes []client.Like, userID string) []client.Like {
	out := make([]client.Like, 0, len(likes))
	for _, l := range likes {
		if l.UserID != userID {
			out = append(out, l)
		}
	}
	return out
}

func removeFavorite(favorites []client.Favorite, userID string) []client.Favorite {
	out := make([]client.Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.UserID != userID {
			out = append(out, f)
		}
	}
	return out
}

func cloneLikes(in []client.Like) []client.Like {
	out := make([]client.Like, len(in))
	copy(out, in)
	return out
}

func cloneFavorites(in []client.Favorite) []client.Favorite {
	out := make([]client.Favorite, len(in))
	copy(out, in)
	return out
}

func cloneComments(in []client.Comment) []client.Comment {
	out := make([]client.Comment, len(in))
	copy(out, in)
	return out
}

func cloneState(s PostState) PostState {
	s.Likes = cloneLikes(s.Likes)
	s.Favorites = cloneFavorites(s.Favorites)
	s.Comments = cloneComments(s.Comments)
	return s
}
