package wikitable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/wikitable/markup"
)

func TestColumns(t *testing.T) {
	d := time.Date(1984, time.August, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"empty column", markup.String(EmptyColumn()), `<td><br/></td>`},
		{"text column", markup.String(TextColumn("Sam")), `<td>Sam</td>`},
		{"empty text column", markup.String(TextColumn("")), `<td><br/></td>`},
		{"date node", markup.String(DateNode(d)), `<time datetime="1984-08-13"/>`},
		{"date column", markup.String(DateColumn(d)), `<td><div class="content-wrapper"><p><time datetime="1984-08-13"/></p></div></td>`},
		{"zero date column", markup.String(DateColumn(time.Time{})), `<td><br/></td>`},
		{"single wrapper", markup.String(ContentWrapper(markup.NewText("test"))), `<div class="content-wrapper"><p>test</p></div>`},
		{
			"multi wrapper",
			markup.String(ContentWrapper(markup.NewText("prefix"), markup.NewElement("br"), markup.NewText("suffix"))),
			`<div class="content-wrapper"><p>prefix<br/>suffix</p></div>`,
		},
		{"row", markup.String(NewRow(TextColumn("a"), EmptyColumn())), `<tr><td>a</td><td><br/></td></tr>`},
		{"multi child column", markup.String(Column(markup.NewText("a"), markup.NewElement("br"))), `<td>a<br/></td>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
