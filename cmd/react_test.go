// ABOUTME: Tests for the reaction commands
// ABOUTME: Verifies toggle requests, comments, and token short-circuits

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLikeCommand(t *testing.T) {
	isolateConfig(t)
	loginAs(t, "u1", "Ada")

	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/likes/toggle" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Blog liked"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runLike(context.Background(), &buf, "p1")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if gotBody["postId"] != "p1" {
		t.Errorf("postId = %q, want p1", gotBody["postId"])
	}
	if !bytes.Contains(buf.Bytes(), []byte("Blog liked")) {
		t.Errorf("expected server message, got %q", buf.String())
	}
}

func TestLikeCommand_NotLoggedIn(t *testing.T) {
	isolateConfig(t)

	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runLike(context.Background(), &buf, "p1")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if hit {
		t.Error("an unauthenticated toggle must not reach the server")
	}
}

func TestFavoriteCommand(t *testing.T) {
	isolateConfig(t)
	loginAs(t, "u1", "Ada")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/favorites/toggle" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Added to favorites"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runFavorite(context.Background(), &buf, "p1")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
}

func TestCommentCommand(t *testing.T) {
	isolateConfig(t)
	loginAs(t, "u1", "Ada")

	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "c1"})
	}))
	defer server.Close()

	apiURL = server.URL
	commentMessage = "  Great post!  "
	defer func() {
		apiURL = ""
		commentMessage = ""
	}()

	var buf bytes.Buffer
	exitCode := runComment(context.Background(), &buf, "p1")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if gotBody["content"] != "Great post!" {
		t.Errorf("content = %q, want trimmed text", gotBody["content"])
	}
	if gotBody["postId"] != "p1" {
		t.Errorf("postId = %q, want p1", gotBody["postId"])
	}
}

func TestCommentCommand_RejectsWhitespace(t *testing.T) {
	isolateConfig(t)
	loginAs(t, "u1", "Ada")

	apiURL = "http://127.0.0.1:1" // must not be reached
	commentMessage = "   \n  "
	defer func() {
		apiURL = ""
		commentMessage = ""
	}()

	var buf bytes.Buffer
	exitCode := runComment(context.Background(), &buf, "p1")

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("comment cannot be empty")) {
		t.Errorf("expected validation error, got %q", buf.String())
	}
}
