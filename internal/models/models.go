package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"           json:"id"`
	Username     string `gorm:"size:255;uniqueIndex;not null"      json:"username"`
	PasswordHash string `gorm:"column:password;size:255;not null"  json:"-"`
}

func (User) TableName() string { return "usuarios" }

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"                 json:"id"`
	Name        string  `gorm:"column:nombre;size:255"                   json:"nombre"`
	Description string  `gorm:"column:descripcion;type:text"             json:"descripcion"`
	Price       float64 `gorm:"column:precio;type:decimal(10,2)"         json:"precio"`
	ImageURL    string  `gorm:"column:imagen_url;size:512"               json:"imagen_url"`
}

func (Product) TableName() string { return "productos" }

func All() []any {
	return []any{&User{}, &Product{}}
}
