package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, err := GetInt(bufio.NewReader(strings.NewReader("42\n")), "n", &out)
	require.NoError(t, err)
	require.Equal(t, 42, n)

	_, err = GetInt(bufio.NewReader(strings.NewReader("abc\n")), "n", &out)
	require.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	v, err := GetFloat(bufio.NewReader(strings.NewReader("499.90\n")), "price", &out)
	require.NoError(t, err)
	require.InDelta(t, 499.90, v, 0.001)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("first\nsecond\n\nignored\n"))

	got, err := GetMultiline(reader, "Message", &out)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(_ int) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	require.Equal(t, "hunter2", pw)
	require.Contains(t, out.String(), "Enter password")
}
