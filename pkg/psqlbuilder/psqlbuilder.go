// Package psqlbuilder — тонкая обертка над squirrel с плейсхолдерами Postgres ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с плейсхолдерами $N
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder с плейсхолдерами $N
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE builder с плейсхолдерами $N
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder с плейсхолдерами $N
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
