package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop представляет магазин поставщика
// Создается и обновляется только при импорте прайс-листа
type Shop struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	UserID     uuid.UUID  `json:"-" gorm:"type:uuid;index;not null"` // Владелец магазина из Auth Service
	State      bool       `json:"state" gorm:"not null;default:true"` // Принимает ли магазин заказы
	Categories []Category `json:"-" gorm:"many2many:shop_categories"`
}

// TableName указывает имя таблицы для GORM
func (Shop) TableName() string {
	return "shops"
}

// Category представляет категорию товаров
// ID задается прайс-листом и общий для всех магазинов
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name  string `json:"name" gorm:"type:varchar(100);not null"`
	Shops []Shop `json:"-" gorm:"many2many:shop_categories"`
}

func (Category) TableName() string {
	return "categories"
}

// Product представляет товар, уникальный по паре (название, категория)
type Product struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Name       string   `json:"name" gorm:"type:varchar(150);not null;uniqueIndex:idx_product_name_category"`
	CategoryID uint     `json:"category_id" gorm:"not null;uniqueIndex:idx_product_name_category"`
	Category   Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}

// ProductInfo представляет предложение товара конкретным магазином
// При импорте прайс-листа все предложения магазина пересоздаются целиком
type ProductInfo struct {
	ID                uint               `json:"id" gorm:"primaryKey"`
	Model             string             `json:"model" gorm:"type:varchar(100)"`
	ExternalID        uint               `json:"external_id" gorm:"not null;uniqueIndex:idx_info_shop_external"`
	ProductID         uint               `json:"-" gorm:"not null"`
	Product           Product            `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	ShopID            uint               `json:"shop" gorm:"not null;uniqueIndex:idx_info_shop_external"`
	Quantity          int                `json:"quantity" gorm:"not null"`
	Price             float64            `json:"price" gorm:"type:decimal(12,2);not null"`
	PriceRRC          float64            `json:"price_rrc" gorm:"type:decimal(12,2);not null"` // Рекомендованная розничная цена
	ProductParameters []ProductParameter `json:"product_parameters,omitempty" gorm:"foreignKey:ProductInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ProductInfo) TableName() string {
	return "product_infos"
}

// Parameter представляет глобальное имя характеристики товара
type Parameter struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Parameter) TableName() string {
	return "parameters"
}

// ProductParameter представляет значение характеристики для предложения магазина
type ProductParameter struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	ProductInfoID uint      `json:"-" gorm:"not null;uniqueIndex:idx_param_info_parameter"`
	ParameterID   uint      `json:"-" gorm:"not null;uniqueIndex:idx_param_info_parameter"`
	Parameter     Parameter `json:"parameter" gorm:"foreignKey:ParameterID"`
	Value         string    `json:"value" gorm:"type:varchar(150);not null"`
}

func (ProductParameter) TableName() string {
	return "product_parameters"
}

// Order представляет заказ пользователя
// Заказ в состоянии basket — это корзина, которая еще не оформлена
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID   `json:"-" gorm:"type:uuid;index;not null"` // ID пользователя из Auth Service
	State     OrderState  `json:"state" gorm:"type:varchar(20);not null;default:'basket'"`
	ContactID *uint       `json:"-"`
	Contact   *Contact    `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	Items     []OrderItem `json:"ordered_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalSum возвращает стоимость заказа: Σ количество × цена предложения
// Требует предзагруженных позиций с ProductInfo
func (o *Order) TotalSum() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.ProductInfo.Price
	}
	return total
}

// OrderItem представляет позицию заказа
// Пара (заказ, предложение) уникальна: повторное добавление отклоняется
type OrderItem struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	OrderID       uint        `json:"-" gorm:"not null;uniqueIndex:idx_item_order_info"`
	ProductInfoID uint        `json:"-" gorm:"not null;uniqueIndex:idx_item_order_info"`
	ProductInfo   ProductInfo `json:"product_info" gorm:"foreignKey:ProductInfoID"`
	Quantity      int         `json:"quantity" gorm:"not null;check:quantity > 0"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Contact представляет адрес доставки пользователя
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	City      string    `json:"city" gorm:"type:varchar(50);not null"`
	Street    string    `json:"street" gorm:"type:varchar(100);not null"`
	House     string    `json:"house" gorm:"type:varchar(15)"`
	Structure string    `json:"structure" gorm:"type:varchar(15)"`
	Building  string    `json:"building" gorm:"type:varchar(15)"`
	Apartment string    `json:"apartment" gorm:"type:varchar(15)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20);not null"`
}

func (Contact) TableName() string {
	return "contacts"
}
