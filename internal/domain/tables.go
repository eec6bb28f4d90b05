package domain

// Schema holds the idempotent DDL executed at startup. Statements must be
// safe to run repeatedly and never drop data.
var Schema = []string{
	`create table if not exists produtos (
		id integer primary key,
		nome text not null,
		valor_em_centavos integer not null
	)`,
}
