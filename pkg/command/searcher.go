package command

import (
	"github.com/notjagan/matchup/pkg/model"
)

type searcher[T model.Localizer] interface {
	Search() []T
	Value(T) any
}

type typeSearcher struct {
	model  *model.Model
	prefix string
	limit  int
}

func (s typeSearcher) Search() []model.Type {
	return s.model.SearchTypes(s.prefix, s.limit)
}

func (typeSearcher) Value(typ model.Type) any {
	return typ.String()
}
