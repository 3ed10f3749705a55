package model

import (
	"encoding/json"
	"strings"
	"unicode"
)

type SocialMedia struct {
	Facebook  string `json:"facebook" yaml:"facebook"`
	Instagram string `json:"instagram" yaml:"instagram"`
	TikTok    string `json:"tiktok" yaml:"tiktok"`
	YouTube   string `json:"youtube" yaml:"youtube"`
}

type BusinessHours struct {
	Monday    string `json:"monday" yaml:"monday"`
	Tuesday   string `json:"tuesday" yaml:"tuesday"`
	Wednesday string `json:"wednesday" yaml:"wednesday"`
	Thursday  string `json:"thursday" yaml:"thursday"`
	Friday    string `json:"friday" yaml:"friday"`
	Saturday  string `json:"saturday" yaml:"saturday"`
	Sunday    string `json:"sunday" yaml:"sunday"`
}

// StoreConfig is the single store record shown on every page with contact info.
type StoreConfig struct {
	StoreName      string        `json:"storeName" yaml:"storeName"`
	Email          string        `json:"email" yaml:"email"`
	Phone          string        `json:"phone" yaml:"phone"`
	WhatsAppNumber string        `json:"whatsappNumber" yaml:"whatsappNumber"`
	Address        string        `json:"address" yaml:"address"`
	GoogleMapsURL  string        `json:"googleMapsUrl" yaml:"googleMapsUrl"`
	Description    string        `json:"description" yaml:"description"`
	SocialMedia    SocialMedia   `json:"socialMedia" yaml:"socialMedia"`
	BusinessHours  BusinessHours `json:"businessHours" yaml:"businessHours"`
	Currency       string        `json:"currency" yaml:"currency"` // ISO 4217
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		StoreName:      "Mundo Eterno",
		Email:          "info@mundoeterno.com",
		Phone:          "+591 695 07260",
		WhatsAppNumber: "59169507260",
		Address:        "Calle 15 de Junio, entre calle San Agustín y Pinos, frente a la Iglesia Fuente de la Salvación",
		GoogleMapsURL:  "https://maps.app.goo.gl/8BZLzaxr7GwxjJwy6",
		Description:    "Tu destino para las flores más frescas y hermosas",
		SocialMedia: SocialMedia{
			Facebook:  "https://www.facebook.com/share/1Ukm3fesna/",
			Instagram: "https://www.instagram.com/mundo.eterno7",
			TikTok:    "https://www.tiktok.com/@mundo.eterno44?_t=8ratdENk9ZP&_r=1",
			YouTube:   "https://youtube.com/@mundoeterno-tja?si=fFIRYbhtUB7ddDVI",
		},
		BusinessHours: BusinessHours{
			Monday:    "9:00 AM - 6:00 PM",
			Tuesday:   "9:00 AM - 6:00 PM",
			Wednesday: "9:00 AM - 6:00 PM",
			Thursday:  "9:00 AM - 6:00 PM",
			Friday:    "9:00 AM - 6:00 PM",
			Saturday:  "10:00 AM - 4:00 PM",
			Sunday:    "Cerrado",
		},
		Currency: "BOB",
	}
}

// MergeStoreConfig decodes raw over base: fields missing from raw, nested
// social media and business hours keys included, keep the value from base.
func MergeStoreConfig(base StoreConfig, raw []byte) (StoreConfig, error) {
	out := base
	if err := json.Unmarshal(raw, &out); err != nil {
		return base, err
	}
	return out, nil
}

// WhatsAppDigits is the WhatsApp number with every non-digit removed.
func (c StoreConfig) WhatsAppDigits() string {
	return digitsOnly(c.WhatsAppNumber)
}

// PhoneDigits is the phone number with every non-digit removed.
func (c StoreConfig) PhoneDigits() string {
	return digitsOnly(c.Phone)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
