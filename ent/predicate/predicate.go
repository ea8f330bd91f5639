// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ResearchSession is the predicate function for researchsession builders.
type ResearchSession func(*sql.Selector)
