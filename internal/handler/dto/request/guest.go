package request

import (
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GuestRequest struct {
	FirstName  string  `json:"first_name" binding:"required,max=100"`
	LastName   string  `json:"last_name" binding:"required,max=100"`
	NationalID string  `json:"national_id" binding:"required,max=20"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Address    *string `json:"address" binding:"omitempty,max=500"`
}

func (r *GuestRequest) ToInput() (commands.GuestInput, error) {
	var in commands.GuestInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.GuestInput{}, errs.Wrap(err, "copy guest request")
	}
	return in, nil
}

type GuestListQuery struct {
	Search     string `form:"search" binding:"max=100"`
	NationalID string `form:"national_id" binding:"max=20"`
}

func (q *GuestListQuery) ToFilter() queries.GuestFilter {
	return queries.GuestFilter{Search: q.Search, NationalID: q.NationalID}
}
