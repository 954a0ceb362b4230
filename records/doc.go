// Package records provides a schema-driven row transformer for tables whose
// columns are only known at run time, together with readers and writers
// for the record formats the command line tool exchanges.
//
// A [Schema] lists the table's columns and their types. A [Transformer]
// built from it decodes each row into a [Record] keyed by column name and
// encodes records back into rows:
//
//	schema := records.Schema{Columns: []records.Column{
//	    {Name: "name"},
//	    {Name: "born", Type: records.Date},
//	}}
//	recs := wikitable.Parse(doc, records.NewTransformer(schema))
//	records.WriteYAML(os.Stdout, schema, recs)
//
// Cell values decode to string (text), time.Time (date), int64 (int) or
// float64 (float). Empty date cells decode to nil.
package records
