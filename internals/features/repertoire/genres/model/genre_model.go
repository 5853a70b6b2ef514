package model

type Genre struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}
