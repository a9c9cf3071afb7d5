package repository

type User struct {
	Username  string `gorm:"type:varchar(20);primaryKey"`        // natural key, stable identity
	Password  string `gorm:"type:text;not null"`                 // bcrypt hash, never plaintext
	Email     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName string `gorm:"type:varchar(30);not null"`
	LastName  string `gorm:"type:varchar(30);not null"`

	Feedback []Feedback `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

type Feedback struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"type:varchar(100);not null"`
	Content  string `gorm:"type:text;not null"`
	Username string `gorm:"type:varchar(20);index;not null"` // owner, immutable after create
}

func (Feedback) TableName() string {
	return "feedback"
}
