package yaml

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV3Engine_Parse_Comments(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/comments.yml")
	require.NoError(t, err)

	tree, err := NewV3Engine(DefaultIndent).Parse(string(data), false)
	require.NoError(t, err)

	pairs := tree.Pairs()
	require.Len(t, pairs, 4)

	assert.Equal(t, "test-mapping", pairs[0].Key.Value())
	assert.Equal(t, "comment 1", pairs[0].Value.Comment())
	assert.Equal(t, "comment 2", pairs[0].Value.Pairs()[0].Value.Comment())

	assert.Equal(t, "comment 3", pairs[1].Value.Comment())
	assert.Equal(t, "comment 4", pairs[1].Value.Values()[0].Comment())
	assert.Empty(t, pairs[1].Value.Values()[1].Comment())

	assert.Equal(t, "comment line 1\ncomment line 2", pairs[2].Value.Comment())
	assert.Empty(t, pairs[3].Value.Comment())
}

func TestV3Engine_Parse_EmptyDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{name: "empty", document: ""},
		{name: "whitespace", document: "\n\n"},
		{name: "comments only", document: "# nothing here\n"},
		{name: "null", document: "~\n"},
		{name: "document marker", document: "---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := NewV3Engine(DefaultIndent).Parse(tt.document, false)
			require.NoError(t, err)
			assert.Equal(t, KindMapping, tree.Kind())
			assert.Empty(t, tree.Pairs())
		})
	}
}

func TestV3Engine_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		wantErr  error
	}{
		{name: "sequence root", document: "- a\n- b\n", wantErr: ErrRootNotMapping},
		{name: "scalar root", document: "hello\n", wantErr: ErrRootNotMapping},
		{name: "recursive alias", document: "a: &x\n  b: *x\n", wantErr: ErrRecursiveAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewV3Engine(DefaultIndent).Parse(tt.document, false)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestV3Engine_Parse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewV3Engine(DefaultIndent).Parse("key: [unclosed\n", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding document")
}

func TestV3Engine_Parse_FollowsAliases(t *testing.T) {
	t.Parallel()

	tree, err := NewV3Engine(DefaultIndent).Parse("base: &b\n  k: v\ncopy: *b\n", false)
	require.NoError(t, err)

	pairs := tree.Pairs()
	require.Len(t, pairs, 2)
	require.Equal(t, KindMapping, pairs[1].Value.Kind())
	assert.Equal(t, "k", pairs[1].Value.Pairs()[0].Key.Value())
	assert.Equal(t, "v", pairs[1].Value.Pairs()[0].Value.Value())
}

func TestV3Engine_Parse_GuessIndentation(t *testing.T) {
	t.Parallel()

	document := "a:\n  b: 1\n   c: 2\n"

	_, err := NewV3Engine(DefaultIndent).Parse(document, false)
	require.Error(t, err)

	tree, err := NewV3Engine(DefaultIndent).Parse(document, true)
	require.NoError(t, err)

	inner := tree.Pairs()[0].Value.Pairs()
	require.Len(t, inner, 2)
	assert.Equal(t, "c", inner[1].Key.Value())
	assert.Equal(t, "2", inner[1].Value.Value())
}

func TestV3Engine_Print(t *testing.T) {
	t.Parallel()

	engine := NewV3Engine(DefaultIndent)
	tree := engine.Mapping([]Entry{
		{Key: "hello", Value: engine.Scalar("hi", "this is not a header", "")},
		{Key: "nested", Value: engine.Mapping([]Entry{
			{Key: "hello", Value: engine.Scalar("hi", "line 1\nline 2", "")},
		}, "")},
		{Key: "list", Value: engine.Sequence([]Tree{
			engine.Scalar("a", "", ""),
			engine.Scalar("b", "", ""),
		}, "")},
		{Key: "empty-map", Value: engine.Mapping(nil, "")},
		{Key: "empty-list", Value: engine.Sequence(nil, "")},
		{Key: "quoted", Value: engine.Scalar("a: b", "", "")},
	}, "")

	var buf bytes.Buffer
	require.NoError(t, engine.Print(tree, &buf))

	assert.Equal(t, `# this is not a header
hello: hi
nested:
  # line 1
  # line 2
  hello: hi
list:
  - a
  - b
empty-map: {}
empty-list: []
quoted: 'a: b'
`, buf.String())
}

func TestV3Engine_Print_ForeignTree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := NewV3Engine(DefaultIndent).Print(scalar("value", ""), &buf)
	require.ErrorIs(t, err, ErrForeignTree)
}

func TestV3Engine_Mapping_AdoptsForeignTrees(t *testing.T) {
	t.Parallel()

	engine := NewV3Engine(DefaultIndent)
	tree := engine.Mapping([]Entry{
		{Key: "key", Value: scalar("value", "adopted")},
	}, "")

	var buf bytes.Buffer
	require.NoError(t, engine.Print(tree, &buf))

	assert.Equal(t, "# adopted\nkey: value\n", buf.String())
}

func TestCommentMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		comment  string
		stripped string
	}{
		{name: "single line", comment: "# hello", stripped: "hello"},
		{name: "multi line", comment: "# one\n# two", stripped: "one\ntwo"},
		{name: "no space", comment: "#tight", stripped: "tight"},
		{name: "extra space", comment: "#  indented", stripped: " indented"},
		{name: "trailing newline", comment: "# one\n", stripped: "one"},
		{name: "empty", comment: "", stripped: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.stripped, stripCommentMarkers(tt.comment))
		})
	}

	assert.Equal(t, "# one\n# two", addCommentMarkers("one\r\ntwo"))
	assert.Equal(t, "#   indented", addCommentMarkers("  indented"))
	assert.Empty(t, addCommentMarkers(""))

	for _, comment := range []string{"plain", " one space", "  indented\nplain", "a\n\tb", "#hash"} {
		assert.Equal(t, comment, stripCommentMarkers(addCommentMarkers(comment)), "comment %q", comment)
	}
}

func TestV3Engine_Print_SkipsTopLevelComment(t *testing.T) {
	t.Parallel()

	engine := NewV3Engine(DefaultIndent)
	tree := engine.Mapping([]Entry{
		{Key: "a", Value: engine.Scalar("1", "ka", "")},
	}, "document")

	var buf bytes.Buffer
	require.NoError(t, engine.Print(tree, &buf))
	assert.Equal(t, "# ka\na: 1\n", buf.String())

	list := engine.Sequence([]Tree{engine.Scalar("x", "", "")}, "zones")

	buf.Reset()
	require.NoError(t, engine.Print(list, &buf))
	assert.Equal(t, "- x\n", buf.String())
}
