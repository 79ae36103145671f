package lexer

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerRescan(t *testing.T) {
	lx := New([]byte(`(add 1 2)`))

	require.NoError(t, lx.Scan())
	first := lx.Tokens()

	require.NoError(t, lx.Scan())
	assert.Equal(t, first, lx.Tokens())
	assert.Len(t, lx.Tokens(), 5)
}

func TestScannerDropsTokensOnError(t *testing.T) {
	lx := New([]byte(`(add 1 2) (#)`))

	err := lx.Scan()
	assert.ErrorIs(t, err, ErrUnknownCharacter)
	assert.Nil(t, lx.Tokens())
}

func TestScannerLogger(t *testing.T) {
	var buf bytes.Buffer

	lx := New([]byte(`(add 1 !`))
	lx.SetLogger(log.New(&buf, "", 0))

	err := lx.Scan()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `token: (:open_paren "(" [1 1])`)
	assert.Contains(t, out, `token: (:name "add" [1 2])`)
	assert.Contains(t, out, "lexer error: unknown character '!' at offset 7")
}

func TestScannerConcurrent(t *testing.T) {
	inputs := []string{
		`(add 1 2)`,
		`(concat "foo" "bar")`,
		`(add 2 (subtract 4 2))`,
		`1 2 3 "four"`,
	}

	expected := make([][]Token, len(inputs))
	for i := range inputs {
		tokens, err := TokenizeString(inputs[i])
		require.NoError(t, err)
		expected[i] = tokens
	}

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		for i := range inputs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tokens, err := TokenizeString(inputs[i])
				assert.NoError(t, err)
				assert.Equal(t, expected[i], tokens)
			}(i)
		}
	}
	wg.Wait()
}
