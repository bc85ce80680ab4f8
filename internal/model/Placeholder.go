package model

import "github.com/techbuddyspace/certify/pkg/certify"

// Placeholder is one named region of a template. Legacy rows carry only the
// point (X, Y); the rectangle corner columns are nullable on purpose so the
// compositor can distinguish "absent" from zero.
type Placeholder struct {
	BaseModel
	TemplateRef string `gorm:"type:text;not null;index" json:"-"`

	Key      string `gorm:"type:text;not null" json:"key" form:"key" binding:"required"`
	X        int    `gorm:"type:int;default:0" json:"x" form:"x"`
	Y        int    `gorm:"type:int;default:0" json:"y" form:"y"`
	FontSize int    `gorm:"type:int;default:48" json:"fontSize" form:"fontSize"`
	Color    string `gorm:"type:text" json:"color" form:"color"`

	X1 *int `gorm:"type:int" json:"x1,omitempty" form:"x1"`
	Y1 *int `gorm:"type:int" json:"y1,omitempty" form:"y1"`
	X2 *int `gorm:"type:int" json:"x2,omitempty" form:"x2"`
	Y2 *int `gorm:"type:int" json:"y2,omitempty" form:"y2"`

	TextAlign     string `gorm:"type:text;default:center" json:"textAlign" form:"textAlign"`
	VerticalAlign string `gorm:"type:text;default:center" json:"verticalAlign" form:"verticalAlign"`
}

func (p Placeholder) TableName() string {
	return "placeholders"
}

func (p Placeholder) ToCore() certify.Placeholder {
	return certify.Placeholder{
		Key:           certify.PlaceholderKey(p.Key),
		X:             p.X,
		Y:             p.Y,
		FontSize:      p.FontSize,
		Color:         p.Color,
		X1:            p.X1,
		Y1:            p.Y1,
		X2:            p.X2,
		Y2:            p.Y2,
		TextAlign:     certify.TextAlign(p.TextAlign),
		VerticalAlign: certify.VerticalAlign(p.VerticalAlign),
	}
}

// ToCorePlaceholders converts a template's placeholder rows into the plain
// structures the composition core consumes.
func ToCorePlaceholders(placeholders []Placeholder) []certify.Placeholder {
	out := make([]certify.Placeholder, len(placeholders))
	for i, p := range placeholders {
		out[i] = p.ToCore()
	}
	return out
}
