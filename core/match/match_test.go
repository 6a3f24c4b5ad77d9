// core/match/match_test.go
package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	req, err := Validate("ABABDABACDABABCABAB", "ABABCABAB")
	require.NoError(t, err)
	assert.Equal(t, "ABABDABACDABABCABAB", req.Text)
	assert.Equal(t, "ABABCABAB", req.Pattern)
}

func TestValidateRejectsEmptyText(t *testing.T) {
	_, err := Validate("", "A")
	require.Error(t, err)
	var inv *InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Contains(t, inv.Reason, "text")
}

func TestValidateRejectsEmptyPattern(t *testing.T) {
	_, err := Validate("ABC", "")
	require.Error(t, err)
	var inv *InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Contains(t, inv.Reason, "pattern")
}

func TestValidateRejectsPatternLongerThanText(t *testing.T) {
	_, err := Validate("AB", "ABC")
	require.Error(t, err)
	var inv *InvalidInputError
	require.True(t, errors.As(err, &inv))
}

func TestValidateTextLengthBoundary(t *testing.T) {
	atCap := strings.Repeat("A", MaxTextLen)
	_, err := Validate(atCap, "A")
	assert.NoError(t, err, "exactly MaxTextLen characters must be accepted")

	_, err = Validate(atCap+"A", "A")
	require.Error(t, err, "MaxTextLen+1 characters must be rejected")
	var inv *InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Contains(t, inv.Reason, "maximum")
}

func TestValidatePatternMayEqualText(t *testing.T) {
	req, err := Validate("ABC", "ABC")
	require.NoError(t, err)
	assert.Equal(t, req.Text, req.Pattern)
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := &InvalidInputError{Reason: "text must not be empty"}
	assert.Equal(t, "invalid input: text must not be empty", err.Error())
}
