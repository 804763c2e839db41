package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"escaped quote", `a,"say ""hi""",c`, []string{"a", `say "hi"`, "c"}},
		{"empty fields", "a,,c,", []string{"a", "", "c", ""}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"quoted amount", `"1,234.56",x`, []string{"1,234.56", "x"}},
		{"single field", "solo", []string{"solo"}},
		{"empty line", "", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeLine(tt.in))
		})
	}
}

func TestTokenize_FirstRowHeader(t *testing.T) {
	doc, ok := Tokenize("a,b\n1,2\n3,4\n")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, doc.Header)
	assert.Len(t, doc.Rows, 2)
}

func TestTokenize_SkipsBlankLinesAndCR(t *testing.T) {
	doc, ok := Tokenize("a,b\r\n\r\n1,2\r\n")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, doc.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, doc.Rows)
}

func TestTokenize_HeaderScan(t *testing.T) {
	text := "Acme Corp\nAccrual Schedule,as of 1/31/25\n\nVendor,Description,Balance\nAWS,Hosting,100\n"
	doc, ok := Tokenize(text, "Vendor", "Memo/Description")
	require.True(t, ok)
	assert.Equal(t, []string{"Vendor", "Description", "Balance"}, doc.Header)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "AWS", doc.Rows[0][0])
}

func TestTokenize_NoHeaderFound(t *testing.T) {
	_, ok := Tokenize("just,some,numbers\n1,2,3\n", "Vendor")
	assert.False(t, ok)

	_, ok = Tokenize("\n\n")
	assert.False(t, ok)
}
