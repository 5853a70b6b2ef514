package model

// WeekDay carries an explicit ordering column so Monday..Sunday sort by
// position, not alphabetically. Column is "ord" because ORDER is reserved.
type WeekDay struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(20);not null" json:"name"`
	Ord  int    `gorm:"column:ord;not null;unique" json:"order"`
}

func (WeekDay) TableName() string {
	return "week_days"
}
