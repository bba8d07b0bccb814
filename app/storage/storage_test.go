package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Likes []string `json:"likes"`
}

func openTestMedium(t *testing.T) *BadgerMedium {
	t.Helper()
	medium, err := Open(t.TempDir() + "/db")
	require.NoError(t, err)
	t.Cleanup(func() {
		medium.Close()
	})
	return medium
}

func TestBadgerMedium(t *testing.T) {
	medium := openTestMedium(t)

	t.Run("read of a never-written key reports absent", func(t *testing.T) {
		var out []record
		found, err := medium.Read("missing", &out)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, out)
	})

	t.Run("write and read round-trip", func(t *testing.T) {
		in := []record{
			{ID: "1", Name: "first", Likes: []string{"a", "b"}},
			{ID: "2", Name: "second", Likes: []string{}},
		}
		err := medium.Write("records", in)
		require.NoError(t, err)

		var out []record
		found, err := medium.Read("records", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("write replaces the whole value", func(t *testing.T) {
		err := medium.Write("records", []record{{ID: "3", Name: "third"}})
		require.NoError(t, err)

		var out []record
		found, err := medium.Read("records", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, out, 1)
		assert.Equal(t, "3", out[0].ID)
	})

	t.Run("delete makes a key absent", func(t *testing.T) {
		require.NoError(t, medium.Write("doomed", record{ID: "x"}))
		require.NoError(t, medium.Delete("doomed"))

		var out record
		found, err := medium.Read("doomed", &out)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete of an absent key is not an error", func(t *testing.T) {
		assert.NoError(t, medium.Delete("never-written"))
	})
}

func TestBadgerMediumPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir() + "/db"

	medium, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, medium.Write(BlogsKey, []record{{ID: "1", Name: "kept"}}))
	require.NoError(t, medium.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	var out []record
	found, err := reopened.Read(BlogsKey, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", out[0].Name)
}

func TestBadgerMediumBackupRestore(t *testing.T) {
	medium := openTestMedium(t)
	require.NoError(t, medium.Write(UsersKey, []record{{ID: "u1", Name: "ada"}}))

	var buf bytes.Buffer
	require.NoError(t, medium.Backup(&buf))

	target := openTestMedium(t)
	require.NoError(t, target.Restore(&buf))

	var out []record
	found, err := target.Read(UsersKey, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ada", out[0].Name)
}

func TestBadgerMediumClear(t *testing.T) {
	medium := openTestMedium(t)
	require.NoError(t, medium.Write(UsersKey, record{ID: "u1"}))
	require.NoError(t, medium.Clear())

	var out record
	found, err := medium.Read(UsersKey, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMediumFailureKind(t *testing.T) {
	medium := openTestMedium(t)
	require.NoError(t, medium.Close())

	err := medium.Write("users", record{ID: "u1"})
	assert.ErrorIs(t, err, ErrMediumFailure)
}
