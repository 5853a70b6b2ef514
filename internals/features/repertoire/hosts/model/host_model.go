package model

type Host struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	Name       string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Experience *int   `gorm:"column:experience" json:"experience,omitempty"` // years
}

func (Host) TableName() string {
	return "hosts"
}
