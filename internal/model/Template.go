package model

type Template struct {
	BaseModel
	TemplateID  string `gorm:"type:text;not null;uniqueIndex" json:"templateId" form:"templateId"`
	Name        string `gorm:"type:text;not null" json:"name" form:"name" binding:"required,strNotEmpty"`
	Description string `gorm:"type:text" json:"description" form:"description"`
	// Object key of the background image in blob storage.
	ImageKey string `gorm:"type:text;not null" json:"imageKey" form:"imageKey"`

	Placeholders []Placeholder `gorm:"foreignKey:TemplateRef;references:TemplateID;constraint:OnDelete:CASCADE" json:"placeholders"`
}

func (t Template) TableName() string {
	return "templates"
}
