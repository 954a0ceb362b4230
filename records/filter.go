package records

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/sirupsen/logrus"
)

// Filter returns the records for which expression evaluates to true. The
// record's columns are the expression's variables, so with int column
// "age" the expression `age >= 21` keeps adults. An empty expression keeps
// every record.
//
// A compile error is returned. A record the expression fails on at run
// time (for example a nil date compared with a date) is logged and
// dropped.
func Filter(recs []Record, expression string, log logrus.FieldLogger) ([]Record, error) {
	if strings.TrimSpace(expression) == "" {
		return recs, nil
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}

	kept := make([]Record, 0, len(recs))
	for i, r := range recs {
		out, err := expr.Run(program, map[string]any(r))
		if err != nil {
			log.WithError(err).WithField("record", i+1).Warn("filter expression failed")
			continue
		}
		if ok, _ := out.(bool); ok {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
