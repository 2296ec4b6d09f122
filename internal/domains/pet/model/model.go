package model

import (
	"pawsit/shared/model"
)

const (
	TableName  = "pets"
	EntityName = "pet"

	FieldID      = "id"
	FieldOwnerID = "owner_id"
	FieldName    = "name"
	FieldType    = "type"
)

// Pet is a client's pet profile. Only the type tag matters to assignment;
// the rest is carried for the owner-facing surfaces.
type Pet struct {
	ID      string  `db:"id"`
	OwnerID string  `db:"owner_id"`
	Name    string  `db:"name"`
	Type    string  `db:"type"`
	Breed   *string `db:"breed"`
	Notes   *string `db:"notes"`
	model.Metadata
}
