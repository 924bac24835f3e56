package dto

import (
	"tutorials/internal/domains/tutorial/model"
	gDto "tutorials/shared/dto"
	gModel "tutorials/shared/model"
	"tutorials/shared/timezone"
)

type CreateTutorialRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Published   bool   `json:"published"`
}

func (c *CreateTutorialRequest) ToModel() model.Tutorial {
	now := timezone.Now()

	return model.Tutorial{
		Title:       c.Title,
		Description: c.Description,
		Published:   c.Published,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// UpdateTutorialRequest carries a partial update. Nil fields are left untouched.
type UpdateTutorialRequest struct {
	Title       *string `db:"title" json:"title" validate:"omitempty,notblank,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=255"`
	Published   *bool   `db:"published" json:"published"`
}

func (u *UpdateTutorialRequest) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Published == nil
}

type TutorialResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	gDto.Metadata
}

func (r *TutorialResponse) FromModel(model model.Tutorial) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Published = model.Published
	r.Metadata.FromModel(model.Metadata)
}

// FromModels maps a result set to responses, returning an empty slice rather than nil.
func FromModels(models []model.Tutorial) []TutorialResponse {
	res := make([]TutorialResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type DeleteAllResponse struct {
	Message string `json:"message"`
}
