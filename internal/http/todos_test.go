package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plakhov/taskboard/internal/database/todos"
	"github.com/plakhov/taskboard/internal/entities"
)

func TestTodosController_CreateTodo(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	token := signupUser(t, router, "a@b.com", "tester")

	t.Run("creates a todo owned by the caller", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos", map[string]string{"title": "abc"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, "abc", todo.Title)
		assert.False(t, todo.Completed)
		assert.NotZero(t, todo.OwnerID)
		assert.False(t, todo.DueAt.IsZero())
	})

	t.Run("missing title falls back to the placeholder", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos", map[string]string{}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, todos.DefaultTitle, todo.Title)
	})

	t.Run("overlong title is a client error", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos", map[string]string{"title": "sixteen chars!!!"}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTodosController_ListTodos(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	alice := signupUser(t, router, "alice@b.com", "alice")
	bob := signupUser(t, router, "bob@b.com", "bobby")

	for _, title := range []string{"one", "two"} {
		w := doJSON(router, "POST", "/todos", map[string]string{"title": title}, alice)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(router, "POST", "/todos", map[string]string{"title": "bobs"}, bob)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/todos", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []entities.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "one", listed[0].Title)
	assert.Equal(t, "two", listed[1].Title)
}

func TestTodosController_GetTodo(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	alice := signupUser(t, router, "alice@b.com", "alice")
	bob := signupUser(t, router, "bob@b.com", "bobby")

	w := doJSON(router, "POST", "/todos", map[string]string{"title": "mine"}, alice)
	require.Equal(t, http.StatusOK, w.Code)
	var created entities.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("owner can fetch", func(t *testing.T) {
		w := doJSON(router, "GET", "/todos/1", nil, alice)
		require.Equal(t, http.StatusOK, w.Code)

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, created.ID, todo.ID)
	})

	t.Run("other users get 404", func(t *testing.T) {
		w := doJSON(router, "GET", "/todos/1", nil, bob)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown id gets 404", func(t *testing.T) {
		w := doJSON(router, "GET", "/todos/9999", nil, alice)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a client error", func(t *testing.T) {
		w := doJSON(router, "GET", "/todos/abc", nil, alice)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTodosController_UpdateTodo(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	alice := signupUser(t, router, "alice@b.com", "alice")
	bob := signupUser(t, router, "bob@b.com", "bobby")

	w := doJSON(router, "POST", "/todos", map[string]string{"title": "initial"}, alice)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("merges provided fields", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos/1", map[string]any{
			"title":     "renamed",
			"completed": true,
		}, alice)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, "renamed", todo.Title)
		assert.True(t, todo.Completed)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos/1", map[string]any{"completed": false}, alice)
		require.Equal(t, http.StatusOK, w.Code)

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, "renamed", todo.Title)
		assert.False(t, todo.Completed)
	})

	t.Run("other users cannot update", func(t *testing.T) {
		w := doJSON(router, "POST", "/todos/1", map[string]any{"title": "hijacked"}, bob)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(router, "GET", "/todos/1", nil, alice)
		require.Equal(t, http.StatusOK, w.Code)

		var todo entities.Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
		assert.Equal(t, "renamed", todo.Title)
	})
}
