package entity

// OrderState представляет состояние заказа
type OrderState string

const (
	OrderStateBasket    OrderState = "basket"    // Корзина, заказ не оформлен
	OrderStateNew       OrderState = "new"       // Оформлен на контакт доставки
	OrderStateConfirmed OrderState = "confirmed" // Подтвержден магазином
	OrderStateAssembled OrderState = "assembled" // Собран
	OrderStateSent      OrderState = "sent"      // Передан в доставку
	OrderStateDelivered OrderState = "delivered" // Доставлен
	OrderStateCanceled  OrderState = "canceled"  // Отменен
)

// Таблица допустимых переходов состояний заказа
// Через HTTP доступен только переход basket -> new (оформление)
var stateTransitions = map[OrderState][]OrderState{
	OrderStateBasket:    {OrderStateNew},
	OrderStateNew:       {OrderStateConfirmed, OrderStateCanceled},
	OrderStateConfirmed: {OrderStateAssembled, OrderStateCanceled},
	OrderStateAssembled: {OrderStateSent, OrderStateCanceled},
	OrderStateSent:      {OrderStateDelivered},
	OrderStateDelivered: {}, // Финальное состояние
	OrderStateCanceled:  {}, // Финальное состояние
}

// CanTransition проверяет допустимость перехода между состояниями заказа
func CanTransition(from, to OrderState) bool {
	allowed, exists := stateTransitions[from]
	if !exists {
		return false
	}

	for _, state := range allowed {
		if state == to {
			return true
		}
	}

	return false
}

// Valid проверяет, что состояние входит в закрытый перечень
func (s OrderState) Valid() bool {
	_, exists := stateTransitions[s]
	return exists
}
