package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorials/shared/dto"
	"tutorials/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	assert.Equal(t, "2023-01-01T12:00:00Z", metadata.CreatedAt)
	assert.Equal(t, "2023-01-02T12:00:00Z", metadata.UpdatedAt)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "published", Value: true, Operator: dto.FilterOperatorEq, Table: "tutorials"},
			wantWhere: "tutorials.published = :published",
			wantArgs:  map[string]any{"published": true},
		},
		{
			name:      "like is case insensitive substring",
			filter:    dto.Filter{Field: "title", Value: "Go", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": "%Go%"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "title", Value: `50%_off\`, Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": `%50\%\_off\\%`},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "tutorial_id", Field: "id", Value: 3, Operator: dto.FilterOperatorEq},
			wantWhere: "id = :tutorial_id",
			wantArgs:  map[string]any{"tutorial_id": 3},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "title", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "title", Value: "go", Operator: dto.FilterOperatorLike},
			dto.Filter{Field: "title", Operator: "unknown"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "published", Value: true, Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "tutorial_id", Field: "id", Value: 10, Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(title) LIKE LOWER(:title) AND (published = :published OR id = :tutorial_id))", where)
	assert.Equal(t, map[string]any{"title": "%go%", "published": true, "tutorial_id": 10}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
