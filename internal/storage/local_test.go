package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"café.png", "caf_.png"},
		{"...", "file"},
		{"", "file"},
		{".env", "env"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestSave_UniqueNamesForSameFilename(t *testing.T) {
	t.Parallel()

	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save("photo.jpg", strings.NewReader("first"))
	require.NoError(t, err)
	b, err := s.Save("photo.jpg", strings.NewReader("second"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.True(t, strings.HasSuffix(a, "_photo.jpg"))
	require.True(t, strings.HasSuffix(b, "_photo.jpg"))

	pa, err := s.Resolve(a)
	require.NoError(t, err)
	got, err := os.ReadFile(pa)
	require.NoError(t, err)
	require.Equal(t, "first", string(got))

	pb, err := s.Resolve(b)
	require.NoError(t, err)
	got, err = os.ReadFile(pb)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))
}

func TestResolve_RejectsTraversal(t *testing.T) {
	t.Parallel()

	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{
		"",
		"..",
		"../secret",
		"a/../../secret",
		"sub/dir.txt",
	} {
		_, err := s.Resolve(name)
		require.ErrorIs(t, err, ErrNotFound, "name %q", name)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	t.Parallel()

	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = s.Resolve("nope.jpg")
	require.ErrorIs(t, err, ErrNotFound)
}
