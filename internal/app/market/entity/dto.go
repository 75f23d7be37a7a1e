package entity

// StatusResponse общий формат ответа для операций без тела
type StatusResponse struct {
	Status  bool   `json:"Status"`
	Message string `json:"Message,omitempty"`
	Errors  string `json:"Errors,omitempty"`
}

// ImportRequest запрос импорта прайс-листа магазина
type ImportRequest struct {
	URL string `json:"url" validate:"required"`
}

// ShopStateRequest запрос смены состояния магазина
// Значение разбирается как булево из строки ("true"/"1"/"on"/...)
type ShopStateRequest struct {
	State string `json:"state" validate:"required"`
}

// BasketItemsRequest обертка над строковым полем items корзины
type BasketItemsRequest struct {
	Items string `json:"items" validate:"required"`
}

// BasketItemAdd позиция для добавления в корзину (JSON внутри поля items)
type BasketItemAdd struct {
	ProductInfo uint `json:"product_info"`
	Quantity    int  `json:"quantity"`
}

// BasketItemUpdate обновление количества позиции корзины (JSON внутри поля items)
type BasketItemUpdate struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// CheckoutRequest запрос оформления заказа на контакт доставки
type CheckoutRequest struct {
	ID      uint `json:"id" validate:"required,gt=0"`
	Contact uint `json:"contact" validate:"required,gt=0"`
}

// ContactRequest создание или обновление адреса доставки
type ContactRequest struct {
	ID        uint   `json:"id,omitempty"`
	City      string `json:"city" validate:"required"`
	Street    string `json:"street" validate:"required"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone" validate:"required"`
}

// ProductInfoFilter фильтры публичного запроса предложений
type ProductInfoFilter struct {
	ShopID     uint
	CategoryID uint
}

// ImportSummary итоги импорта прайс-листа
type ImportSummary struct {
	ShopID     uint `json:"shop_id"`
	Categories int  `json:"categories"`
	Products   int  `json:"products"`
	Listings   int  `json:"listings"`
	Parameters int  `json:"parameters"`
}

// OrderResponse заказ с развернутыми позициями и итоговой суммой
type OrderResponse struct {
	ID        uint                `json:"id"`
	State     OrderState          `json:"state"`
	CreatedAt string              `json:"created_at"`
	Contact   *Contact            `json:"contact,omitempty"`
	Items     []OrderItemResponse `json:"ordered_items"`
	TotalSum  float64             `json:"total_sum"`
}

// OrderItemResponse позиция заказа с развернутым предложением
type OrderItemResponse struct {
	ID          uint                `json:"id"`
	ProductInfo ProductInfoResponse `json:"product_info"`
	Quantity    int                 `json:"quantity"`
}

// ProductInfoResponse предложение магазина с товаром и характеристиками
type ProductInfoResponse struct {
	ID         uint              `json:"id"`
	Model      string            `json:"model"`
	ExternalID uint              `json:"external_id"`
	Product    string            `json:"product"`
	Category   string            `json:"category"`
	ShopID     uint              `json:"shop"`
	Quantity   int               `json:"quantity"`
	Price      float64           `json:"price"`
	PriceRRC   float64           `json:"price_rrc"`
	Parameters map[string]string `json:"parameters"`
}
