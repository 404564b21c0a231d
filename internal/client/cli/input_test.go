package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello \n")), "Say", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Say\n> ", out.String())

	got, err = GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "Say", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Say", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer

	readPassword = func(int) ([]byte, error) { return []byte("sekret"), nil }
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "sekret", pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword(&out)
	require.Error(t, err)
}
