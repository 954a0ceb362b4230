package wikitable

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/tsawler/wikitable/markup"
	"github.com/tsawler/wikitable/scalar"
)

type person struct {
	Name string
	Age  int
}

type personTransformer struct{}

func (personTransformer) RequiredHeaders() []string { return []string{"name", "age"} }

func (personTransformer) DecodeRow(row Row) (person, bool) {
	name := scalar.TrimSpace(row.Text("name"))
	if name == "" {
		return person{}, false
	}
	return person{Name: name, Age: scalar.ParseInt(row.Text("age"))}, true
}

func (personTransformer) EncodeRow(p person) *html.Node {
	return NewRow(TextColumn(p.Name), TextColumn(strconv.Itoa(p.Age)))
}

type event struct {
	Title string
	Date  time.Time
}

type eventTransformer struct{}

func (eventTransformer) RequiredHeaders() []string { return []string{"title", "date"} }

func (eventTransformer) DecodeRow(row Row) (event, bool) {
	d, _ := scalar.ParseDate("02.01.2006", row.Text("date"))
	return event{Title: row.Text("title"), Date: d}, true
}

func (eventTransformer) EncodeRow(e event) *html.Node {
	return NewRow(TextColumn(e.Title), DateColumn(e.Date))
}

func parseXML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := markup.ParseXML(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func newTestParser[T any](tr RowTransformer[T]) (*Parser[T], *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return NewParser(tr).Logger(l), hook
}

func errorEntries(hook *test.Hook) []logrus.Entry {
	var out []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			out = append(out, *e)
		}
	}
	return out
}

func TestBuild_RendersWikiTable(t *testing.T) {
	people := []person{{"Sam", 23}, {"Mary", 21}}

	doc, err := Build(people, personTransformer{})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t,
		`<table class="wrapped"><colgroup><col/><col/></colgroup><tbody><tr><th>name</th><th>age</th></tr>`+
			`<tr><td>Sam</td><td>23</td></tr><tr><td>Mary</td><td>21</td></tr></tbody></table>`,
		markup.String(doc),
	)
}

func TestBuild_EmptyIsNoOp(t *testing.T) {
	doc, err := Build([]person{}, personTransformer{})
	assert.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = Build[person](nil, personTransformer{})
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestBuilder_TableHeaderOnly(t *testing.T) {
	table, err := NewBuilder[person](personTransformer{}).Table(nil)
	require.NoError(t, err)
	assert.Equal(t,
		`<table class="wrapped"><colgroup><col/><col/></colgroup><tbody><tr><th>name</th><th>age</th></tr></tbody></table>`,
		markup.String(table),
	)
}

type badTransformer struct {
	personTransformer
	row func() *html.Node
}

func (b badTransformer) EncodeRow(person) *html.Node { return b.row() }

func TestBuild_TransformerErrors(t *testing.T) {
	_, err := Build([]person{{"Sam", 23}}, badTransformer{row: func() *html.Node { return nil }})
	assert.ErrorIs(t, err, ErrNilRow)

	shared := NewRow(TextColumn("x"), TextColumn("1"))
	markup.NewDocument(shared)
	_, err = Build([]person{{"Sam", 23}}, badTransformer{row: func() *html.Node { return shared }})
	assert.ErrorIs(t, err, ErrAttachedRow)
}

func TestRoundTrip(t *testing.T) {
	people := []person{{"Sam", 23}, {"Mary", 21}, {"Zo\u00eb", 0}}

	doc, err := Build(people, personTransformer{})
	require.NoError(t, err)

	// Directly from the built tree.
	assert.Equal(t, people, Parse(doc, personTransformer{}))

	// Through the serialized form.
	reparsed := parseXML(t, markup.String(doc))
	assert.Equal(t, people, Parse(reparsed, personTransformer{}))
}

func TestRoundTrip_Dates(t *testing.T) {
	d := time.Date(1984, time.August, 13, 0, 0, 0, 0, time.UTC)
	events := []event{{"birthday", d}, {"unknown", time.Time{}}}

	doc, err := Build(events, eventTransformer{})
	require.NoError(t, err)

	out := markup.String(doc)
	assert.Contains(t, out, `<td><div class="content-wrapper"><p><time datetime="1984-08-13"/></p></div></td>`)
	assert.Contains(t, out, `<td>unknown</td><td><br/></td>`)

	got := Parse(parseXML(t, out), eventTransformer{})
	require.Len(t, got, 2)
	assert.True(t, d.Equal(got[0].Date))
	assert.True(t, got[1].Date.IsZero())
}

func TestParse_HeaderNormalization(t *testing.T) {
	for _, header := range []string{" Name ", "NAME", "name", "\u00a0name\u00a0"} {
		doc := parseXML(t, `<table><tbody><tr><th>`+header+`</th><th>Age</th></tr>`+
			`<tr><td>Sam</td><td>23</td></tr></tbody></table>`)

		got := Parse(doc, personTransformer{})
		assert.Equal(t, []person{{"Sam", 23}}, got, "header %q", header)
	}
}

func TestParse_DirectRows(t *testing.T) {
	doc := parseXML(t, `<table><tr><th>name</th><th>age</th></tr><tr><td>Sam</td><td>23</td></tr></table>`)
	assert.Equal(t, []person{{"Sam", 23}}, Parse(doc, personTransformer{}))
}

func TestParse_PrettyPrinted(t *testing.T) {
	doc := parseXML(t, `
<table class="wrapped">
  <colgroup>
    <col/>
    <col/>
  </colgroup>
  <tbody>
    <tr>
      <th>name</th>
      <th>age</th>
    </tr>
    <tr>
      <td>Sam</td>
      <td>23</td>
    </tr>
  </tbody>
</table>
`)
	assert.Equal(t, []person{{"Sam", 23}}, Parse(doc, personTransformer{}))
}

func TestParse_HTMLDocument(t *testing.T) {
	doc, err := markup.ParseHTML(strings.NewReader(`<!DOCTYPE html><html><body>
<h1>Team</h1>
<table><tr><th>Name</th><th>Age</th></tr><tr><td>Sam</td><td>&nbsp;23&nbsp;</td></tr></table>
</body></html>`))
	require.NoError(t, err)
	assert.Equal(t, []person{{"Sam", 23}}, Parse(doc, personTransformer{}))
}

func TestParse_RowCountMismatchIsolated(t *testing.T) {
	p, hook := newTestParser[person](personTransformer{})
	doc := parseXML(t, `<table><tbody>
<tr><th>name</th><th>age</th></tr>
<tr><td>Sam</td><td>23</td></tr>
<tr><td>Bob</td><td>40</td><td>extra</td></tr>
<tr><td>Mary</td><td>21</td></tr>
</tbody></table>`)

	got := p.Parse(doc)
	assert.Equal(t, []person{{"Sam", 23}, {"Mary", 21}}, got)

	errs := errorEntries(hook)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Data["text"], "extra")
	assert.Equal(t, 2, errs[0].Data["row"])
}

func TestParse_MissingHeadersSkipsTable(t *testing.T) {
	p, hook := newTestParser[person](personTransformer{})
	doc := parseXML(t, `<root>
<table><tbody><tr><th>name</th><th>email</th></tr><tr><td>Sam</td><td>sam@example.com</td></tr></tbody></table>
<table><tbody><tr><th>name</th><th>age</th></tr><tr><td>Mary</td><td>21</td></tr></tbody></table>
</root>`)

	assert.Equal(t, []person{{"Mary", 21}}, p.Parse(doc))

	errs := errorEntries(hook)
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Data["table"])
	assert.Equal(t, []string{"age"}, errs[0].Data["missing"])
}

func TestParse_MultipleTablesInDocumentOrder(t *testing.T) {
	doc := parseXML(t, `<root>
<table><tr><th>name</th><th>age</th></tr><tr><td>A</td><td>1</td></tr><tr><td>B</td><td>2</td></tr></table>
<p>between</p>
<table><tbody><tr><th>age</th><th>name</th></tr><tr><td>3</td><td>C</td></tr></tbody></table>
</root>`)

	got := Parse(doc, personTransformer{})
	assert.Equal(t, []person{{"A", 1}, {"B", 2}, {"C", 3}}, got)
}

func TestParse_SoftRejection(t *testing.T) {
	p, hook := newTestParser[person](personTransformer{})
	doc := parseXML(t, `<table><tr><th>name</th><th>age</th></tr>`+
		`<tr><td><br/></td><td>5</td></tr><tr><td>Sam</td><td>23</td></tr></table>`)

	assert.Equal(t, []person{{"Sam", 23}}, p.Parse(doc))
	assert.Len(t, errorEntries(hook), 1)
}

func TestParse_MalformedShapes(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"empty table", `<table/>`},
		{"only colgroup", `<table><colgroup><col/></colgroup></table>`},
		{"tbody without row", `<table><tbody><caption>x</caption></tbody></table>`},
		{"empty tbody", `<table><tbody/></table>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, hook := newTestParser[person](personTransformer{})
			got := p.Parse(parseXML(t, tt.xml))
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Len(t, errorEntries(hook), 1)
		})
	}
}

func TestParse_NoTables(t *testing.T) {
	got := Parse(parseXML(t, `<p>nothing here</p>`), personTransformer{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParse_HeaderOnlyTable(t *testing.T) {
	p, hook := newTestParser[person](personTransformer{})
	got := p.Parse(parseXML(t, `<table><tbody><tr><th>name</th><th>age</th></tr></tbody></table>`))
	assert.Empty(t, got)
	assert.Empty(t, errorEntries(hook))
}

func TestParseTable(t *testing.T) {
	doc := parseXML(t, `<root><table><tr><th>name</th><th>age</th></tr><tr><td>A</td><td>1</td></tr></table>`+
		`<table><tr><th>name</th><th>age</th></tr><tr><td>B</td><td>2</td></tr></table></root>`)
	tables := markup.FindAll(doc, "table")

	got := NewParser[person](personTransformer{}).ParseTable(tables[1])
	assert.Equal(t, []person{{"B", 2}}, got)
}

func TestHeaders(t *testing.T) {
	doc := parseXML(t, `<table><colgroup><col/></colgroup><tbody><tr><th> Name </th><th>Due <b>date</b></th></tr></tbody></table>`)
	assert.Equal(t, []string{" Name ", "Due date"}, Headers(markup.Find(doc, "table")))
}

func TestTableHeaders(t *testing.T) {
	p, hook := newTestParser[person](personTransformer{})

	one := parseXML(t, `<table><tr><th>name</th><th>age</th></tr></table>`)
	assert.Equal(t, []string{"name", "age"}, p.TableHeaders(one))
	assert.Empty(t, errorEntries(hook))

	none := parseXML(t, `<p/>`)
	assert.Empty(t, p.TableHeaders(none))
	require.Len(t, errorEntries(hook), 1)

	two := parseXML(t, `<root><table/><table/></root>`)
	assert.Empty(t, p.TableHeaders(two))
	errs := errorEntries(hook)
	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[1].Data["tables"])
}

func TestRow_Lookup(t *testing.T) {
	cells := []*html.Node{TextColumn("1"), TextColumn("2"), TextColumn("3")}
	row, ok := newRow([]string{" Name ", "name", "Age"}, cells)
	require.True(t, ok)

	assert.Equal(t, 3, row.Len())
	assert.Same(t, cells[0], row.Cell(" Name "), "exact match wins")
	assert.Same(t, cells[1], row.Cell("NAME"), "last normalized match wins")
	assert.Same(t, cells[2], row.Cell("age"))
	assert.Nil(t, row.Cell("email"))
	assert.False(t, row.Has("email"))
	assert.Equal(t, "", row.Text("email"))

	h, c := row.At(2)
	assert.Equal(t, "Age", h)
	assert.Same(t, cells[2], c)

	headers := row.Headers()
	headers[0] = "changed"
	assert.Equal(t, " Name ", row.headers[0])
}

func TestRow_CountMismatch(t *testing.T) {
	_, ok := newRow([]string{"a"}, []*html.Node{TextColumn("1"), TextColumn("2")})
	assert.False(t, ok)
}
