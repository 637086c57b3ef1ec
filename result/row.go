package result

// Column describes one column of the query result
type Column struct {
	Keyspace string
	Table    string
	Name     string
	Type     string
}

// Columns is the ordered column schema of the result, passed through unchanged from the page source
type Columns []Column

// Names returns column names in schema order
func (cc Columns) Names() []string {
	names := make([]string, len(cc))
	for i := range cc {
		names[i] = cc[i].Name
	}

	return names
}

// IndexOf returns the position of column name or -1
func (cc Columns) IndexOf(name string) int {
	for i := range cc {
		if cc[i].Name == name {
			return i
		}
	}

	return -1
}

// Row is an immutable tuple of column values
type Row interface {
	Columns() Columns
	Values() []any
	Value(name string) (any, bool)
}

var _ Row = row{}

type row struct {
	columns Columns
	values  []any
}

// NewRow makes Row from schema and values. Values must follow schema order.
func NewRow(columns Columns, values []any) Row {
	return row{
		columns: columns,
		values:  values,
	}
}

func (r row) Columns() Columns {
	return r.columns
}

func (r row) Values() []any {
	return r.values
}

func (r row) Value(name string) (any, bool) {
	i := r.columns.IndexOf(name)
	if i < 0 || i >= len(r.values) {
		return nil, false
	}

	return r.values[i], true
}
