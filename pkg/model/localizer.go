package model

type Localizer interface {
	LocalizedName() string
}
