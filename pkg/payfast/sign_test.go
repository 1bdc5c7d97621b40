// payfast-gateway/pkg/payfast/sign_test.go
package payfast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldSetOf(pairs ...string) FieldSet {
	fs := NewFieldSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		fs.Set(pairs[i], pairs[i+1])
	}
	return fs
}

func TestCanonicalStringSortsKeysBytewise(t *testing.T) {
	// inserted deliberately out of order
	fs := fieldSetOf(
		"name_first", "John",
		"amount", "100.00",
		"merchant_id", "10000100",
		"Zed", "z", // 'Z' < 'a' bytewise
	)
	got := CanonicalString(fs, "")
	assert.Equal(t, "Zed=z&amount=100.00&merchant_id=10000100&name_first=John", got)
}

func TestCanonicalStringAppendsPassphraseLast(t *testing.T) {
	fs := fieldSetOf("zzz", "1", "aaa", "2")
	got := CanonicalString(fs, "pass phrase")
	// trailing pair, not sorted in, value encoded
	assert.True(t, strings.HasSuffix(got, "&passphrase=pass+phrase"), got)
}

func TestCanonicalStringEmptyFields(t *testing.T) {
	assert.Equal(t, "", CanonicalString(NewFieldSet(), ""))
	assert.Equal(t, "passphrase=s", CanonicalString(NewFieldSet(), "s"))
}

func TestSignKnownVectors(t *testing.T) {
	fs := fieldSetOf("name_first", "John", "amount", "100.00")
	assert.Equal(t, "amount=100.00&name_first=John", CanonicalString(fs, ""))
	assert.Equal(t, "5a0233ae0230858d47c379d07b6034c0", Sign(fs, ""))
	assert.Equal(t, "2bb1bf7b27f38c22a9e5c76173d2a718", Sign(fs, "securepassphrase"))

	assert.Equal(t, "08c9aa47156d02a1acb1ab4d02d072e7",
		Sign(fieldSetOf("item_name", "Test Item"), ""))
}

func TestSignIsDeterministic(t *testing.T) {
	fs := fieldSetOf("b", "2", "a", "1", "c", "3")
	first := Sign(fs, "pp")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, Sign(fs, "pp"))
	}
	require.Len(t, first, 32)
	require.Equal(t, strings.ToLower(first), first)
}

func TestSignOmittedFieldDiffersFromEmptyField(t *testing.T) {
	with := fieldSetOf("name_first", "John", "cell_number", "")
	without := fieldSetOf("name_first", "John")

	assert.NotEqual(t, CanonicalString(without, ""), CanonicalString(with, ""))
	assert.NotEqual(t, Sign(without, "pp"), Sign(with, "pp"))
}

func TestFieldSetLastSetWins(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("amount", "1.00")
	fs.Set("amount", "2.00")
	require.Equal(t, 1, fs.Len())
	v, ok := fs.Get("amount")
	require.True(t, ok)
	assert.Equal(t, "2.00", v)
}

func TestFieldSetCloneIsIndependent(t *testing.T) {
	fs := fieldSetOf("a", "1")
	c := fs.Clone()
	c.Set("a", "9")
	c.Set("b", "2")

	v, _ := fs.Get("a")
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, fs.Len())
}
