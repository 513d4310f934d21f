package deck

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AssignsFieldsByPosition(t *testing.T) {
	input := "hola,hello\nperro,dog,starred\ngato,cat,no,extra,fields\nsolo\n"

	cards, err := DefaultCodec().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Card{
		{Front: "hola", Back: "hello"},
		{Front: "perro", Back: "dog", Starred: true},
		{Front: "gato", Back: "cat"},
		{Front: "solo"},
	}, cards)
}

func TestParse_StarIndicator(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"starred", true},
		{"STARFISH", true},
		{"Star", true},
		{"  starred  ", true},
		{" 1 ", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"sta", false},
		{"yes", false},
		{"11", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			cards, err := DefaultCodec().Parse(strings.NewReader("a,b," + tt.token + "\n"))
			require.NoError(t, err)
			require.Len(t, cards, 1)
			assert.Equal(t, tt.want, cards[0].Starred)
		})
	}
}

func TestParse_MissingStarTokenIsFalse(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("a,b"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.False(t, cards[0].Starred)
}

func TestParse_InvalidUTF8StarIsFalse(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("a,b,star\xff\n"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.False(t, cards[0].Starred)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("a,b\n\n\nc,d\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}}, cards)
}

func TestParse_LastLineWithoutTerminator(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("a,b\r\nc,d,1"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d", Starred: true}}, cards)
}

func TestParse_EmptyFieldsAreKept(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader(",\n,back\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{}, {Back: "back"}}, cards)
}

func TestParse_QuotedFields(t *testing.T) {
	input := `"a, b","say ""hi""",starred` + "\n" + `"x"y,z` + "\n"

	cards, err := DefaultCodec().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Front: "a, b", Back: `say "hi"`, Starred: true},
		{Front: "xy", Back: "z"},
	}, cards)
}

func TestParse_UnterminatedQuoteEndsAtLineEnd(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("\"open, still open\nnext,card\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Front: "open, still open"},
		{Front: "next", Back: "card"},
	}, cards)
}

func TestParse_QuoteInsideUnquotedFieldIsLiteral(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader(`it's "fine",ok` + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: `it's "fine"`, Back: "ok"}}, cards)
}

func TestParse_InvalidUTF8IsReplaced(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("caf\xe9,coffee\n"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "caf\uFFFD", cards[0].Front)
}

func TestParse_CustomDelimiter(t *testing.T) {
	c := Codec{Delimiter: ';', MaxFieldSize: 64}
	cards, err := c.Parse(strings.NewReader("a,1;b,2;star\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "a,1", Back: "b,2", Starred: true}}, cards)
}

func TestParse_MultiByteDelimiter(t *testing.T) {
	c := Codec{Delimiter: '→'}
	cards, err := c.Parse(strings.NewReader("uno→one\n"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "uno", Back: "one"}}, cards)
}

func TestParse_FieldTooLargeFailsWholeParse(t *testing.T) {
	c := Codec{MaxFieldSize: 8}
	input := "a,b\nc,d\n" + strings.Repeat("x", 9) + ",e\n"

	cards, err := c.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldTooLarge), "err = %v", err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Empty(t, cards)
}

func TestParse_FieldAtCeilingFits(t *testing.T) {
	c := Codec{MaxFieldSize: 8}
	cards, err := c.Parse(strings.NewReader(strings.Repeat("x", 8) + ",y\n"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, strings.Repeat("x", 8), cards[0].Front)
}

func TestParse_OversizedFieldOnVeryLongLine(t *testing.T) {
	input := strings.Repeat("x", 2<<20) + ",b\n"

	cards, err := DefaultCodec().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldTooLarge)
	assert.Contains(t, err.Error(), "line 1")
	assert.Empty(t, cards)
}

func TestParse_LineLongerThanReaderBuffer(t *testing.T) {
	c := Codec{MaxFieldSize: 1 << 20}
	front := strings.Repeat("x", 1<<20)

	cards, err := c.Parse(strings.NewReader(front + ",b\nc,d\n"))
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, front, cards[0].Front)
	assert.Equal(t, "b", cards[0].Back)
	assert.Equal(t, Card{Front: "c", Back: "d"}, cards[1])
}

func TestParse_CarriageReturnBeforeEOF(t *testing.T) {
	cards, err := DefaultCodec().Parse(strings.NewReader("a,b\r\n\r\nc,d\r"))
	require.NoError(t, err)
	assert.Equal(t, []Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}}, cards)
}

func TestParse_ReadErrorIsWrapped(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := DefaultCodec().Parse(&failingReader{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestWrite_FormatsRecords(t *testing.T) {
	cards := []Card{
		{Front: "a", Back: "b"},
		{Front: "c", Back: "d", Starred: true},
		{Front: "with, comma", Back: `with "quote"`},
		{Front: "", Back: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, DefaultCodec().Write(&buf, cards))

	want := "a,b\n" +
		"c,d,starred\n" +
		`"with, comma","with ""quote"""` + "\n" +
		",\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_SinkErrorIsReturnedUnchanged(t *testing.T) {
	boom := errors.New("sink closed")
	err := DefaultCodec().Write(failingWriter{err: boom}, []Card{{Front: "a", Back: "b"}})
	assert.Same(t, boom, err)
}

func TestRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"comma":     DefaultCodec(),
		"semicolon": {Delimiter: ';'},
		"tab":       {Delimiter: '\t'},
	}
	cards := []Card{
		{Front: "hola", Back: "hello"},
		{Front: "perro", Back: "dog", Starred: true},
		{Front: " leading space", Back: "trailing space "},
		{Front: "", Back: "empty front", Starred: true},
		{Front: "ünïcödé", Back: "日本語"},
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Write(&buf, cards))

			got, err := c.Parse(&buf)
			require.NoError(t, err)
			assert.Equal(t, cards, got)
		})
	}
}

func TestRoundTrip_QuotedContent(t *testing.T) {
	cards := []Card{{Front: `a,"b"`, Back: `"`, Starred: true}}

	var buf bytes.Buffer
	require.NoError(t, DefaultCodec().Write(&buf, cards))

	got, err := DefaultCodec().Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, cards, got)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}
