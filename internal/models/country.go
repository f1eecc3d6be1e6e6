package models

type Country struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:32;uniqueIndex;not null"`

	// Associations
	Movies []Movie `json:"movies,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`
}

func (Country) TableName() string {
	return "countries"
}
