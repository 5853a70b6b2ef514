package model

type Hall struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Capacity *int   `gorm:"column:capacity" json:"capacity,omitempty"`
}

func (Hall) TableName() string {
	return "halls"
}
