package handlers

import (
	"net/http"
	"testing"

	"github.com/devfolio/apiserver/types"
)

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv()
	token := adminToken(t)

	rec := doJSON(t, env.router, http.MethodPost, "/projects", token, map[string]any{
		"title":       "Portfolio Website",
		"description": "Personal site",
		"tech":        []string{"Go", "PostgreSQL"},
		"githubLink":  "https://github.com/example/portfolio",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[types.Project](t, rec)
	if created.ID == 0 {
		t.Fatalf("expected assigned project id")
	}
	if len(created.Tech) != 2 || created.Tech[0] != "Go" {
		t.Fatalf("tech = %v", created.Tech)
	}

	rec = doJSON(t, env.router, http.MethodGet, "/projects", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	listed := decodeBody[[]types.Project](t, rec)
	if len(listed) != 1 || listed[0].Title != "Portfolio Website" {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	rec = doJSON(t, env.router, http.MethodPut, "/projects/1", token, map[string]any{
		"title": "Portfolio Website v2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[types.Project](t, rec)
	if updated.Title != "Portfolio Website v2" {
		t.Fatalf("title = %q after update", updated.Title)
	}
	if updated.Description != "Personal site" {
		t.Fatalf("partial update clobbered description: %q", updated.Description)
	}

	rec = doJSON(t, env.router, http.MethodDelete, "/projects/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	msg := decodeBody[MessageResponse](t, rec)
	if msg.Message != "Project deleted successfully" {
		t.Fatalf("delete message = %q", msg.Message)
	}

	rec = doJSON(t, env.router, http.MethodGet, "/projects/1", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestProjectListEmpty(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodGet, "/projects", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	listed := decodeBody[[]types.Project](t, rec)
	if len(listed) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(listed))
	}
}

func TestProjectInvalidID(t *testing.T) {
	env := newTestEnv()

	for _, path := range []string{"/projects/abc", "/projects/0", "/projects/-3"} {
		rec := doJSON(t, env.router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func TestProjectUpdateNotFound(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPut, "/projects/42", adminToken(t), map[string]any{
		"title": "Ghost",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != "Project not found" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestProjectDeleteNotFound(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodDelete, "/projects/42", adminToken(t), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProjectMutationsRequireAuth(t *testing.T) {
	env := newTestEnv()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/projects"},
		{http.MethodPut, "/projects/1"},
		{http.MethodDelete, "/projects/1"},
	} {
		rec := doJSON(t, env.router, tc.method, tc.path, "", map[string]string{"title": "x"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}
