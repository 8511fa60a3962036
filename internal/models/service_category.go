package models

type ServiceCategory struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (ServiceCategory) TableName() string {
	return "services_categories"
}
