package postgres

import sq "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using PostgreSQL $n
// placeholders. Repositories use it for queries whose WHERE clause depends
// on optional filters; fixed statements stay as SQL constants.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
