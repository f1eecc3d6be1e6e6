package models

type Director struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"size:32;not null"`
	Bio   string `json:"bio" gorm:"type:text"`
	Age   int    `json:"age" gorm:"not null"`
	Image string `json:"image"`
}

func (Director) TableName() string {
	return "directors"
}
