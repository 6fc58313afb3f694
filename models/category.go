package models

type ColorTheme string

const (
	ColorThemePink    ColorTheme = "pink"
	ColorThemeBlue    ColorTheme = "blue"
	ColorThemeNeutral ColorTheme = "neutral"
)

type Category struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"unique;not null" json:"name"`
	ColorTheme ColorTheme `gorm:"type:VARCHAR(10);default:'neutral'" json:"color_theme"`
	Products   []Product  `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
