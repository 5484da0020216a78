package checkmx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Email: "foo@example.com", Status: StatusValid},
		{Email: "bad-email", Status: StatusInvalidFormat},
	}

	require.NoError(t, NewPrinter(&buf).Print(results))

	want := "Checking 2 address(es)...\n" +
		"\n" +
		"Email                                    Status\n" +
		strings.Repeat("-", 60) + "\n" +
		"foo@example.com                          valid domain\n" +
		"bad-email                                invalid email format\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_OneRowPerResult(t *testing.T) {
	var buf bytes.Buffer
	results := make([]Result, 7)
	for i := range results {
		results[i] = Result{Email: "a@example.com", Status: StatusValid}
	}

	require.NoError(t, NewPrinter(&buf).Print(results))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4+len(results))
}

func TestPrinter_LongEmailNotCut(t *testing.T) {
	var buf bytes.Buffer
	email := strings.Repeat("x", 45) + "@example.com"

	require.NoError(t, NewPrinter(&buf).Print([]Result{{Email: email, Status: StatusValid}}))
	assert.Contains(t, buf.String(), email+" valid domain\n")
}

func TestPrinter_PadsByCharacters(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).Print([]Result{{Email: "jürgen@bücher.example", Status: StatusValid}}))
	assert.Contains(t, buf.String(), "jürgen@bücher.example"+strings.Repeat(" ", 19)+" valid domain\n")
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Email: "foo@example.com", Status: StatusValid},
		{Email: "a@nomx.example.com", Status: StatusMissingMX},
		{Email: "a@nosuchdomain.invalid", Status: StatusNoSuchDomain},
	}

	require.NoError(t, NewPrinter(&buf).EnableColor().Print(results))

	out := buf.String()
	assert.Contains(t, out, "\x1b[32m"+StatusValid)
	assert.Contains(t, out, "\x1b[33m"+StatusMissingMX)
	assert.Contains(t, out, "\x1b[31m"+StatusNoSuchDomain)
	assert.Contains(t, out, "Email                                    Status\n")
}
