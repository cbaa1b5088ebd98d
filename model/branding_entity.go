package model

// WatermarkPosition 水印锚点
type WatermarkPosition string

const (
	WatermarkTopLeft     WatermarkPosition = "top-left"
	WatermarkTopRight    WatermarkPosition = "top-right"
	WatermarkBottomLeft  WatermarkPosition = "bottom-left"
	WatermarkBottomRight WatermarkPosition = "bottom-right"
	WatermarkCenter      WatermarkPosition = "center"
)

func (p WatermarkPosition) IsValid() bool {
	switch p {
	case WatermarkTopLeft, WatermarkTopRight, WatermarkBottomLeft, WatermarkBottomRight, WatermarkCenter:
		return true
	}
	return false
}

// Branding 用户品牌配置，与用户一对一
type Branding struct {
	BaseEntity
	UserID            string            `gorm:"column:user_id;size:36;uniqueIndex;not null"`
	User              *User             `gorm:"foreignKey:UserID"`
	PrimaryColor      string            `gorm:"column:primary_color;size:7"` // #RRGGBB
	SecondaryColor    string            `gorm:"column:secondary_color;size:7"`
	AccentColor       string            `gorm:"column:accent_color;size:7"`
	FontFamily        string            `gorm:"column:font_family"`
	LogoURL           *string           `gorm:"column:logo_url"`
	WatermarkPosition WatermarkPosition `gorm:"column:watermark_position;size:16"`
	WatermarkOpacity  float64           `gorm:"column:watermark_opacity"` // 0.0 - 1.0
	ImageStyle        string            `gorm:"column:image_style"`
	IncludeLogo       bool              `gorm:"column:include_logo"`
	IncludeDomain     bool              `gorm:"column:include_domain"`
}

func (Branding) TableName() string {
	return "brandings"
}
