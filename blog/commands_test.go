package blog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"quill/app/models"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("QUILL_DATA_DIR", filepath.Join(t.TempDir(), "db"))
	t.Setenv("QUILL_LOG_LEVEL", "error")
}

func TestRegisterPostAndListCommands(t *testing.T) {
	setupTestDB(t)

	out := captureOutput(func() {
		HandleCommand([]string{"register", "-u", "ada", "-e", "ada@x.com", "-p", "pw"})
	})
	assert.Contains(t, out, "Welcome, ada!")

	out = captureOutput(func() {
		HandleCommand([]string{"whoami"})
	})
	assert.Contains(t, out, "ada <ada@x.com>")

	out = captureOutput(func() {
		HandleCommand([]string{"post", "-t", "Hello World!!", "-c", "This is a sufficiently long body."})
	})
	assert.Contains(t, out, "Published \"Hello World!!\"")

	out = captureOutput(func() {
		HandleCommand([]string{"feed"})
	})
	assert.Contains(t, out, "Hello World!!")
	assert.Contains(t, out, "0 likes")

	out = captureOutput(func() {
		HandleCommand([]string{"mine"})
	})
	assert.Contains(t, out, "Hello World!!")
}

func TestLogoutCommand(t *testing.T) {
	setupTestDB(t)

	captureOutput(func() {
		HandleCommand([]string{"register", "-u", "ada", "-e", "ada@x.com", "-p", "pw"})
	})
	out := captureOutput(func() {
		HandleCommand([]string{"logout"})
	})
	assert.Contains(t, out, "Signed out")

	out = captureOutput(func() {
		HandleCommand([]string{"whoami"})
	})
	assert.Contains(t, out, "Not signed in")
}

func TestInitCommand(t *testing.T) {
	setupTestDB(t)

	out := captureOutput(func() {
		HandleCommand([]string{"init"})
	})
	assert.Contains(t, out, "Database initialized successfully")

	out = captureOutput(func() {
		HandleCommand([]string{"init"})
	})
	assert.Contains(t, out, "Database already exists")
}

func TestLikeCount(t *testing.T) {
	assert.Equal(t, "0 likes", likeCount(&models.Post{}))
	assert.Equal(t, "1 like", likeCount(&models.Post{Likes: []string{"a"}}))
	assert.Equal(t, "2 likes", likeCount(&models.Post{Likes: []string{"a", "b"}}))
}
