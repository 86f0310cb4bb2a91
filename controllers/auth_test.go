package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"solonest-backend/utils"
)

func TestRegisterCreatesSession(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]any{
		"name":            "Jane Roe",
		"email":           "jane@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	require.Equal(t, "Jane Roe", user["name"])
	require.Equal(t, utils.DefaultProfession, user["profession"])

	// registering logs the user in, same blob as login
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]any{
		"name":            "Jane Roe",
		"email":           "jane@example.com",
		"password":        "secret123",
		"confirmPassword": "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAcceptsAnyNonEmptyPair(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]any{
		"email":    "jane@example.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	require.Equal(t, "jane@example.com", user["email"])
	require.Equal(t, "John Doe", user["name"])
	require.Equal(t, utils.DefaultProfession, user["profession"])
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]any{"email": "jane@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// still logged out
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMeLogoutFlow(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]any{
		"email":    "jane@example.com",
		"password": "secret",
		"name":     "Jane Roe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	require.Equal(t, "Jane Roe", user["name"])

	// the blob gates the API group
	w = doJSON(t, r, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
