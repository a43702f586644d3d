package department

type Department struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) GetID() int64   { return d.ID }
func (d *Department) SetID(id int64) { d.ID = id }
