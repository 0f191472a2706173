package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetUserInfo_Success(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/user_info" {
			t.Errorf("path = %s, want /api/user_info", r.URL.Path)
		}
		if r.Header.Get(authHeader) != "test-key" {
			t.Errorf("Authentication = %s, want test-key", r.Header.Get(authHeader))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"name":                "Alice",
			"email":               "a@b.c",
			"is_premium":          true,
			"in_trial":            false,
			"profile_picture_url": nil,
			"max_alias_free_plan": 15,
		})
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	info, err := client.GetUserInfo(context.Background())
	if err != nil {
		t.Fatalf("GetUserInfo() error = %v", err)
	}

	if info.Name != "Alice" || !info.IsPremium {
		t.Errorf("info = %+v", info)
	}
	if info.ProfilePictureURL != nil {
		t.Errorf("ProfilePictureURL = %v, want nil", *info.ProfilePictureURL)
	}
	if info.MaxAliasFreePlan == nil || *info.MaxAliasFreePlan != 15 {
		t.Errorf("MaxAliasFreePlan = %v, want 15", info.MaxAliasFreePlan)
	}
}

func TestGetUserInfo_Unauthorized(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New("bad-key", WithBaseURL(server.URL))
	_, err := client.GetUserInfo(context.Background())
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Errorf("GetUserInfo() error = %v, want ErrInvalidAPIKey", err)
	}
}

func TestCreateAPIKey_Success(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/api_key" {
			t.Errorf("path = %s, want /api/api_key", r.URL.Path)
		}
		// The login credential, not the construction-time key.
		if r.Header.Get(authHeader) != "login-key" {
			t.Errorf("Authentication = %s, want login-key", r.Header.Get(authHeader))
		}

		var req apiKeyRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Device != "laptop" {
			t.Errorf("device = %s, want laptop", req.Device)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"api_key": "fresh-key"})
	}))
	defer server.Close()

	client := New("", WithBaseURL(server.URL))
	key, err := client.CreateAPIKey(context.Background(), "login-key", "laptop")
	if err != nil {
		t.Fatalf("CreateAPIKey() error = %v", err)
	}
	if key != "fresh-key" {
		t.Errorf("key = %s, want fresh-key", key)
	}
}

func TestCreateAPIKey_Unauthorized(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New("", WithBaseURL(server.URL))
	_, err := client.CreateAPIKey(context.Background(), "stale-key", "laptop")
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Errorf("CreateAPIKey() error = %v, want ErrInvalidAPIKey", err)
	}
}
