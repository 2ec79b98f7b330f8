package course

// Subject groups courses by topic
type Subject struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"size:200;not null"`
	Slug  string `json:"slug" gorm:"size:200;uniqueIndex;not null"`
}
