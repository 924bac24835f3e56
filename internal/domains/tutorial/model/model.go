package model

import "tutorials/shared/model"

const (
	TableName  = "tutorials"
	EntityName = "tutorial"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPublished   = "published"
)

type Tutorial struct {
	ID          int64  `db:"id" generated:"true"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Published   bool   `db:"published"`
	model.Metadata
}
