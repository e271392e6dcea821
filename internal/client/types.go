// ABOUTME: Domain types exchanged with the Blogify API
// ABOUTME: Mirrors the JSON shapes the backend returns

package client

import "time"

// Post status values accepted by the backend.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// User identifies a post author or comment writer.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Like is one user's like on one post. Entries are unique per
// (userId, postId); the server enforces this, the client only optimistically.
type Like struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Favorite marks a post as favorited by a user.
type Favorite struct {
	UserID string `json:"userId"`
}

// Comment is a reader comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `json:"user"`
}

// Category groups posts by topic.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the server-owned post entity. The client's copy is a per-page
// cache: every page re-fetches on mount and no cross-page coherence is kept.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"` // HTML
	FeaturedImg string     `json:"featuredImg,omitempty"`
	Status      string     `json:"status"`
	Author      *User      `json:"author,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Views       int        `json:"views"`
	ReadingTime int        `json:"readingTime,omitempty"`
	Likes       []Like     `json:"likes"`
	Favorites   []Favorite `json:"favorites"`
	// Some list endpoints name the favorites collection favoritedBy.
	FavoritedBy []Favorite `json:"favoritedBy,omitempty"`
	Comments    []Comment  `json:"comments"`
	Category    *Category  `json:"category,omitempty"`
}

// LikedBy reports whether the given user has liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// FavoritedByUser reports whether the given user has favorited the post,
// checking both spellings of the collection.
func (p *Post) FavoritedByUser(userID string) bool {
	for _, f := range p.Favorites {
		if f.UserID == userID {
			return true
		}
	}
	for _, f := range p.FavoritedBy {
		if f.UserID == userID {
			return true
		}
	}
	return false
}

// CommentedBy reports whether the given user has commented on the post.
func (p *Post) CommentedBy(userID string) bool {
	for _, c := range p.Comments {
		if c.User.ID == userID {
			return true
		}
	}
	return false
}

// PostInput is the author-provided payload for creating or updating a post.
type PostInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorID    string `json:"authorId,omitempty"`
	FeaturedImg string `json:"featuredImg,omitempty"`
	Status      string `json:"status"`
	CategoryID  string `json:"categoryId,omitempty"`
}

// ToggleResponse is returned by the like and favorite toggle endpoints.
// The collections are authoritative when present: they replace whatever the
// client guessed optimistically.
type ToggleResponse struct {
	Message   string     `json:"message,omitempty"`
	Likes     []Like     `json:"likes,omitempty"`
	Favorites []Favorite `json:"favorites,omitempty"`
}

// DashboardData aggregates the posts a user cares about.
type DashboardData struct {
	All       []Post
	Own       []Post
	Liked     []Post
	Favorited []Post
	Commented []Post
}
