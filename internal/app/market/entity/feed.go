package entity

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ошибки структуры прайс-листа
var (
	ErrFeedShopMissing       = errors.New("feed: shop name is missing")
	ErrFeedCategoriesMissing = errors.New("feed: categories are missing")
	ErrFeedGoodsMissing      = errors.New("feed: goods are missing")
)

// Feed представляет прайс-лист магазина, загружаемый по URL при импорте
type Feed struct {
	Shop       string         `yaml:"shop"`
	Categories []FeedCategory `yaml:"categories"`
	Goods      []FeedGood     `yaml:"goods"`
}

// FeedCategory представляет категорию из прайс-листа
type FeedCategory struct {
	ID   uint   `yaml:"id"`
	Name string `yaml:"name"`
}

// FeedGood представляет товарную позицию прайс-листа
type FeedGood struct {
	ID         uint       `yaml:"id"` // Внешний ID позиции в системе магазина
	Name       string     `yaml:"name"`
	Category   uint       `yaml:"category"`
	Model      string     `yaml:"model"`
	Price      float64    `yaml:"price"`
	PriceRRC   float64    `yaml:"price_rrc"`
	Quantity   int        `yaml:"quantity"`
	Parameters FeedParams `yaml:"parameters"`
}

// FeedParams представляет характеристики позиции как имя -> значение
// Значения в прайс-листах встречаются и числовые, поэтому любой скаляр
// приводится к строке на границе разбора
type FeedParams map[string]string

// UnmarshalYAML разбирает mapping характеристик, приводя скалярные значения к строкам
func (p *FeedParams) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("feed: parameters must be a mapping, got %s", node.Tag)
	}

	params := make(FeedParams, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("feed: parameter %q has a non-scalar value", key.Value)
		}
		params[key.Value] = value.Value
	}

	*p = params
	return nil
}

// Validate проверяет обязательные поля прайс-листа до записи в каталог
func (f *Feed) Validate() error {
	if f.Shop == "" {
		return ErrFeedShopMissing
	}
	if len(f.Categories) == 0 {
		return ErrFeedCategoriesMissing
	}
	if len(f.Goods) == 0 {
		return ErrFeedGoodsMissing
	}

	for _, c := range f.Categories {
		if c.ID == 0 || c.Name == "" {
			return fmt.Errorf("feed: category entry %d is incomplete", c.ID)
		}
	}

	for _, g := range f.Goods {
		if g.ID == 0 || g.Name == "" || g.Category == 0 {
			return fmt.Errorf("feed: goods entry %d is incomplete", g.ID)
		}
		if g.Quantity < 0 || g.Price < 0 {
			return fmt.Errorf("feed: goods entry %d has negative price or quantity", g.ID)
		}
	}

	return nil
}
