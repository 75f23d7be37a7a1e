package entity

import "time"

// EmailNotificationEvent представляет отложенное email-уведомление для Kafka
// Доставкой занимается внешний диспетчер: он обязан не отправлять письмо
// раньше SendAfter, гарантии повторов на его стороне
type EmailNotificationEvent struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	SendAfter time.Time `json:"send_after"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogImportEvent представляет событие успешного импорта прайс-листа
type CatalogImportEvent struct {
	EventType  string    `json:"event_type"` // CATALOG_IMPORTED
	ShopID     uint      `json:"shop_id"`
	Shop       string    `json:"shop"`
	Categories int       `json:"categories"`
	Listings   int       `json:"listings"`
	Timestamp  time.Time `json:"timestamp"`
}
