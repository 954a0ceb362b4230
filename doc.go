// Package wikitable converts between wiki tables and typed row objects.
//
// A wiki table is table markup as stored by Confluence: a table element
// whose header row comes first, either directly below the table or as the
// first row of a tbody. Parsing turns every such table in a document into
// values of a caller type; building does the reverse.
//
// Per-type behavior is supplied by a [RowTransformer]:
//
//	type personTransformer struct{}
//
//	func (personTransformer) RequiredHeaders() []string { return []string{"name", "age"} }
//
//	func (personTransformer) DecodeRow(row wikitable.Row) (Person, bool) {
//	    return Person{
//	        Name: row.Text("name"),
//	        Age:  scalar.ParseInt(row.Text("age")),
//	    }, true
//	}
//
//	func (personTransformer) EncodeRow(p Person) *html.Node {
//	    return wikitable.NewRow(
//	        wikitable.TextColumn(p.Name),
//	        wikitable.TextColumn(strconv.Itoa(p.Age)),
//	    )
//	}
//
// Parsing:
//
//	doc, err := markup.Open("page.xml")
//	if err != nil {
//	    // handle error
//	}
//	people := wikitable.Parse(doc, personTransformer{})
//
// Building:
//
//	doc, err := wikitable.Build(people, personTransformer{})
//	if err != nil {
//	    // handle error
//	}
//	if doc != nil {
//	    markup.RenderXHTML(os.Stdout, doc)
//	}
//
// # Malformed input
//
// Parsing never fails. A table missing a required header contributes no
// rows, a row whose cell count differs from the header count is dropped,
// and a row the transformer rejects is skipped. Each case is logged at
// error level through the parser's logger, which is the only way to tell
// an empty table from a malformed one.
package wikitable
