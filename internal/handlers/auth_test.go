package handlers

import (
	"net/http"
	"testing"
	"time"
)

func TestLogin(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/admin/login", "", LoginRequest{
		Email:    testAdmin.Email,
		Password: testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[LoginResponse](t, rec)
	if resp.Token == "" {
		t.Fatalf("expected token in login response")
	}

	adminID, err := parseTokenSubject(resp.Token, []byte(testSecret))
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if adminID != testAdmin.ID {
		t.Fatalf("token subject = %d, want %d", adminID, testAdmin.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/admin/login", "", LoginRequest{
		Email:    testAdmin.Email,
		Password: "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgInvalidCredentials {
		t.Fatalf("message = %q, want %q", resp.Message, msgInvalidCredentials)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/admin/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", rec.Code)
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgInvalidCredentials {
		t.Fatalf("message = %q, want %q", resp.Message, msgInvalidCredentials)
	}
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv()

	for name, req := range map[string]LoginRequest{
		"empty email":    {Password: "secret"},
		"empty password": {Email: testAdmin.Email},
		"both empty":     {},
	} {
		rec := doJSON(t, env.router, http.MethodPost, "/admin/login", "", req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", name, rec.Code)
		}
		resp := decodeBody[ErrorResponse](t, rec)
		if resp.Message != "Email and password are required" {
			t.Fatalf("%s: message = %q", name, resp.Message)
		}
	}
}

func TestRequireAuthNoToken(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/projects", "", map[string]string{"title": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgNoToken {
		t.Fatalf("message = %q, want %q", resp.Message, msgNoToken)
	}
	if env.adminRepo.calls != 0 {
		t.Fatalf("admin store was queried %d times for a request with no token", env.adminRepo.calls)
	}
}

func TestRequireAuthMalformedToken(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/projects", "not-a-jwt", map[string]string{"title": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgTokenFailed {
		t.Fatalf("message = %q, want %q", resp.Message, msgTokenFailed)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	env := newTestEnv()

	token, err := issueToken(testAdmin.ID, []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := doJSON(t, env.router, http.MethodPost, "/projects", token, map[string]string{"title": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgTokenFailed {
		t.Fatalf("message = %q, want %q", resp.Message, msgTokenFailed)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	env := newTestEnv()

	token, err := issueToken(testAdmin.ID, []byte("some-other-secret"), defaultTokenTTL)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := doJSON(t, env.router, http.MethodPost, "/projects", token, map[string]string{"title": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgTokenFailed {
		t.Fatalf("message = %q, want %q", resp.Message, msgTokenFailed)
	}
}

func TestRequireAuthDeletedAdmin(t *testing.T) {
	env := newTestEnv()

	token, err := issueToken(99, []byte(testSecret), defaultTokenTTL)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := doJSON(t, env.router, http.MethodPost, "/projects", token, map[string]string{"title": "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Message != msgUserNotFound {
		t.Fatalf("message = %q, want %q", resp.Message, msgUserNotFound)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env.router, http.MethodPost, "/projects", adminToken(t), map[string]string{
		"title": "Authorized project",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestBearerToken(t *testing.T) {
	for name, tc := range map[string]struct {
		header  string
		want    string
		wantErr bool
	}{
		"plain":            {header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		"case insensitive": {header: "bearer abc", want: "abc"},
		"missing":          {header: "", wantErr: true},
		"no scheme":        {header: "abc.def.ghi", wantErr: true},
		"wrong scheme":     {header: "Basic abc", wantErr: true},
		"empty token":      {header: "Bearer ", wantErr: true},
	} {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		token, err := bearerToken(r)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got token %q", name, token)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if token != tc.want {
			t.Fatalf("%s: token = %q, want %q", name, token, tc.want)
		}
	}
}
