// ABOUTME: HTTP client for the Blogify REST API
// ABOUTME: Attaches the bearer token and classifies failures for the UI

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// TokenSource supplies the stored bearer token, if any.
type TokenSource interface {
	Get() (string, bool)
}

// StaticToken is a TokenSource holding a fixed token. The empty string
// means no token.
type StaticToken string

// Get implements TokenSource.
func (t StaticToken) Get() (string, bool) {
	return string(t), t != ""
}

// Client is the API client for the Blogify backend.
// Every call is at-most-once: there are no built-in retries, callers decide
// whether to re-issue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client with the given base URL and token source.
func New(baseURL string, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// errorBody is the error envelope the backend returns. Older endpoints use
// "message", newer ones "error".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do issues one request. When needsAuth is set and no token is stored it
// short-circuits with ErrNoToken instead of burning a guaranteed-401 round
// trip. The token is attached whenever present, even on public reads, so
// the server may personalize responses.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.request(ctx, method, path, body, out, false)
}

func (c *Client) doAuth(ctx context.Context, method, path string, body, out any) error {
	return c.request(ctx, method, path, body, out, true)
}

func (c *Client) request(ctx context.Context, method, path string, body, out any, needsAuth bool) error {
	tok, hasToken := c.tokens.Get()
	if needsAuth && !hasToken {
		return ErrNoToken
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if hasToken {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("invalid response from backend: %w", err)
		}
	}
	return nil
}

// handleRequestError converts transport failures into transient errors
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return transient("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return transient("request timed out")
	}
	return transient(fmt.Sprintf("cannot reach backend at %s: %v", c.baseURL, err))
}

// handleErrorResponse parses the error envelope and classifies the status
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
		return classify(resp.StatusCode, "")
	}
	return classify(resp.StatusCode, eb.text())
}

// Register calls POST /users/register to create an account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/users/register", body, nil)
}

// Login calls POST /users/login and returns the bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Kind: KindServer, Message: "login response carried no token"}
	}
	return resp.Token, nil
}

// ListPosts calls GET /posts.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var resp struct {
		Data []Post `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetPost calls GET /posts/:id.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var resp struct {
		Post *Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Post == nil {
		return nil, &APIError{Kind: KindNotFound, Message: "post not found"}
	}
	return resp.Post, nil
}

// AuthorPosts calls GET /posts/author/:authorId.
func (c *Client) AuthorPosts(ctx context.Context, authorID string) ([]Post, error) {
	var resp struct {
		Data []Post `json:"data"`
	}
	if err := c.doAuth(ctx, http.MethodGet, "/posts/author/"+authorID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreatePost calls POST /posts/create. Requires a token.
func (c *Client) CreatePost(ctx context.Context, input PostInput) (*Post, error) {
	var resp struct {
		Post *Post `json:"post"`
	}
	if err := c.doAuth(ctx, http.MethodPost, "/posts/create", input, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

// UpdatePost calls PUT /posts/:id. Requires a token; only the author may
// update, the server answers 403 otherwise.
func (c *Client) UpdatePost(ctx context.Context, id string, input PostInput) (*Post, error) {
	var resp struct {
		Post *Post `json:"post"`
	}
	if err := c.doAuth(ctx, http.MethodPut, "/posts/"+id, input, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

// DeletePost calls DELETE /posts/:id. Requires a token.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.doAuth(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

// ToggleLike calls POST /likes/toggle. Requires a token.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*ToggleResponse, error) {
	var resp ToggleResponse
	body := map[string]string{"postId": postID}
	if err := c.doAuth(ctx, http.MethodPost, "/likes/toggle", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleFavorite calls POST /favorites/toggle. Requires a token.
func (c *Client) ToggleFavorite(ctx context.Context, postID string) (*ToggleResponse, error) {
	var resp ToggleResponse
	body := map[string]string{"postId": postID}
	if err := c.doAuth(ctx, http.MethodPost, "/favorites/toggle", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateComment calls POST /comments/. Requires a token. The returned
// comment may be sparse; callers already display a provisional record.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (*Comment, error) {
	var resp Comment
	body := map[string]string{"postId": postID, "content": content}
	if err := c.doAuth(ctx, http.MethodPost, "/comments/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories calls GET /categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CreateCategory calls POST /categories. Requires a token.
func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var resp struct {
		Category *Category `json:"category"`
	}
	body := map[string]string{"name": name}
	if err := c.doAuth(ctx, http.MethodPost, "/categories", body, &resp); err != nil {
		return nil, err
	}
	return resp.Category, nil
}

// AssignCategory calls POST /categories/add/post to associate a category
// with a post. Requires a token.
func (c *Client) AssignCategory(ctx context.Context, postID, categoryID string) error {
	body := map[string]string{"postId": postID, "categoryId": categoryID}
	return c.doAuth(ctx, http.MethodPost, "/categories/add/post", body, nil)
}

// Dashboard fetches everything the user dashboard needs. The all-posts and
// author-posts reads run concurrently; the liked/favorited/commented slices
// are filtered locally from the full list.
func (c *Client) Dashboard(ctx context.Context, userID string) (*DashboardData, error) {
	if _, ok := c.tokens.Get(); !ok {
		return nil, ErrNoToken
	}

	var all, own []Post
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := c.ListPosts(gctx)
		if err != nil {
			return err
		}
		all = posts
		return nil
	})
	g.Go(func() error {
		posts, err := c.AuthorPosts(gctx, userID)
		if err != nil {
			return err
		}
		own = posts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &DashboardData{All: all, Own: own}
	for _, p := range all {
		if p.LikedBy(userID) {
			data.Liked = append(data.Liked, p)
		}
		if p.FavoritedByUser(userID) {
			data.Favorited = append(data.Favorited, p)
		}
		if p.CommentedBy(userID) {
			data.Commented = append(data.Commented, p)
		}
	}
	return data, nil
}
