package postgres

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using PostgreSQL $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return builder
}
