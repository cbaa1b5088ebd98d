package model

// PlatformType 社交平台类型
type PlatformType string

const (
	PlatformTwitter  PlatformType = "TWITTER"
	PlatformFacebook PlatformType = "FACEBOOK"
	PlatformTelegram PlatformType = "TELEGRAM"
	PlatformWhatsApp PlatformType = "WHATSAPP"
	PlatformTikTok   PlatformType = "TIKTOK"
)

// PlatformTypes 支持的全部平台类型
var PlatformTypes = []PlatformType{
	PlatformTwitter,
	PlatformFacebook,
	PlatformTelegram,
	PlatformWhatsApp,
	PlatformTikTok,
}

func (t PlatformType) IsValid() bool {
	for _, pt := range PlatformTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Platform 社交平台实体类，每种类型一行
type Platform struct {
	BaseEntity
	Type     PlatformType `gorm:"column:type;size:32;uniqueIndex;not null"`
	Name     string       `gorm:"column:name"`
	IsActive bool         `gorm:"column:is_active"`
}

func (Platform) TableName() string {
	return "platforms"
}
