package models

// Row is a single result row from a database routine. The routine result
// shapes are owned by the database, so rows are carried dynamically and
// serialized as JSON objects.
type Row map[string]interface{}
