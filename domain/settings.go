package domain

import "time"

// Settings is a singleton row (id "default") holding the upstream panel
// credentials and the manual-payment instructions. Read-only for the
// storefront; the panel keys are never serialized to clients.
type Settings struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	PterodactylURL    string    `gorm:"column:pterodactyl_url" json:"-"`
	PterodactylAPIKey string    `gorm:"column:pterodactyl_api_key" json:"-"`
	ClientAPIKey      string    `gorm:"column:client_api_key" json:"-"`
	QrisImage         string    `gorm:"column:qris_image" json:"qrisImage"`
	PaymentInfo       string    `gorm:"column:payment_info" json:"paymentInfo"`
	WhatsappNumber    string    `gorm:"column:whatsapp_number" json:"whatsappNumber"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

func (Settings) TableName() string {
	return "settings"
}

// PaymentInfoView is the public slice of Settings shown on the order
// confirmation page.
type PaymentInfoView struct {
	QrisImage      string `json:"qrisImage"`
	PaymentInfo    string `json:"paymentInfo"`
	WhatsappNumber string `json:"whatsappNumber"`
}

func (s Settings) PaymentView() PaymentInfoView {
	return PaymentInfoView{
		QrisImage:      s.QrisImage,
		PaymentInfo:    s.PaymentInfo,
		WhatsappNumber: s.WhatsappNumber,
	}
}
