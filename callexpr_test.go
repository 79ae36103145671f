package callexpr

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`(add 2 (subtract 4 2))`))
	require.NoError(t, err)

	assert.Len(t, root.Body, 1)
	assert.Equal(t, 2, ast.Depth(root))
	assert.Equal(t, `(add 2 (subtract 4 2))`, string(ast.Encode(root)))
}

func TestReader(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
		Err error
	}{
		{
			In:  "(concat \"foo\" \"bar\")\n(add 1 2)\n",
			Out: `(concat "foo" "bar") (add 1 2)`,
		},
		{
			In:  "",
			Out: "",
		},
		{
			In:  "(add 2",
			Err: parser.ErrUnterminatedCall,
		},
		{
			In:  "@add 1 2)",
			Err: lexer.ErrUnknownCharacter,
		},
		{
			In:  "(concat \"foo)",
			Err: lexer.ErrUnterminatedString,
		},
	}

	for i := range testCases {
		root, err := NewReader(strings.NewReader(testCases[i].In)).Parse()
		if testCases[i].Err != nil {
			assert.Nil(t, root)
			assert.True(t, errors.Is(err, testCases[i].Err), "got %v", err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)))
	}
}

func TestReaderError(t *testing.T) {
	root, err := NewReader(iotest.ErrReader(iotest.ErrTimeout)).Parse()
	assert.Nil(t, root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, iotest.ErrTimeout))
	assert.Contains(t, err.Error(), "reading source")
}
