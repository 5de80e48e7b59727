package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, tty bool, read func(int) ([]byte, error)) {
	t.Helper()
	origRead, origTTY := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTTY })
	readPassword = read
	isTerminal = func(int) bool { return tty }
}

func TestGetPassword(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(&out, "Password")
	require.Error(t, err)
}

func TestGetPassword_NotATerminal(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("must not read without a terminal")
		return nil, nil
	})

	var out bytes.Buffer
	_, err := GetPassword(&out, "Password")
	require.ErrorIs(t, err, ErrNotATerminal)
	assert.Empty(t, out.String())
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " YES "} {
		assert.True(t, IsYes(s), s)
	}
	for _, s := range []string{"", "n", "no", "yep", "1"} {
		assert.False(t, IsYes(s), s)
	}
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
	wipe(nil)
}
